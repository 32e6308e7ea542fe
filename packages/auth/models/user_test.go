package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserMigratesAndRolesRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:user_model?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrating users table: %v", err)
	}

	user := User{
		Email:    "alexandre@storytracker.app",
		Username: "alexandre",
		Password: "hashed",
		Slug:     "alexandre",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}

	var loaded User
	if err := db.First(&loaded, user.ID).Error; err != nil {
		t.Fatalf("loading user: %v", err)
	}

	// An empty Roles slice serializes to the default user role.
	if !loaded.HasRole(RoleUser) {
		t.Errorf("expected default role %q, got %v", RoleUser, loaded.Roles)
	}
}

func TestUserRoleHelpers(t *testing.T) {
	user := User{Roles: Roles{RoleUser}}

	user.AddRole(RoleAdmin)
	if !user.HasRole(RoleAdmin) {
		t.Errorf("expected role %q after AddRole, got %v", RoleAdmin, user.Roles)
	}

	user.AddRole(RoleAdmin)
	if len(user.Roles) != 2 {
		t.Errorf("AddRole must not duplicate, got %v", user.Roles)
	}

	user.RemoveRole(RoleUser)
	if user.HasRole(RoleUser) {
		t.Errorf("expected role %q removed, got %v", RoleUser, user.Roles)
	}
}
