package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"core/importer"

	"storytracker-api/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	createCompetitions := flags.Bool("create-competitions", false, "create missing leagues from the club file before importing")
	if err := flags.Parse(os.Args[2:]); err != nil {
		log.Fatal(err)
	}

	if flags.NArg() < 1 {
		fmt.Println("Missing CSV file path")
		printUsage()
		os.Exit(1)
	}
	path := flags.Arg(0)

	config.ConnectDatabase()
	csvImporter := importer.NewImporter(config.DB)

	var result importer.Result
	var err error

	switch command {
	case "competitions":
		result, err = csvImporter.ImportCompetitions(path)
	case "clubs":
		result, err = csvImporter.ImportClubs(path, *createCompetitions)
	case "players":
		result, err = csvImporter.ImportPlayers(path)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	// Row-level failures are already counted in the result; only a file that
	// cannot be read fails the run.
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	fmt.Printf("✅ Import finished: %d created, %d updated, %d skipped, %d errors\n",
		result.Created, result.Updated, result.Skipped, result.Errors)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/import competitions <file.csv>                        - Import leagues and cups")
	fmt.Println("  go run ./cmd/import clubs [--create-competitions] <file.csv>       - Import clubs")
	fmt.Println("  go run ./cmd/import players <file.csv>                             - Import players")
}
