package configs

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/nishan023/rms-test-sub000/entity"
)

// SeedAdmin creates the first staff account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		FullName: "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups creates the canonical online table, a few physical tables and a
// starter menu so a fresh install can take orders immediately.
func SeedLookups() error {
	db.FirstOrCreate(&entity.Table{}, entity.Table{TableCode: entity.OnlineTableCode, TableType: entity.TableOnline})
	for i := 1; i <= 6; i++ {
		code := fmt.Sprintf("T%d", i)
		db.FirstOrCreate(&entity.Table{}, entity.Table{TableCode: code, TableType: entity.TablePhysical})
	}

	var drinks, mains entity.Category
	db.FirstOrCreate(&drinks, entity.Category{CategoryName: "Drinks"})
	db.FirstOrCreate(&mains, entity.Category{CategoryName: "Main Dishes"})

	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Name: "Milk Tea", Price: 60, CategoryID: drinks.ID, Department: entity.DepartmentBar})
	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Name: "Fried Rice", Price: 180, CategoryID: mains.ID, Department: entity.DepartmentKitchen})
	db.FirstOrCreate(&entity.MenuItem{}, entity.MenuItem{Name: "Chicken Momo", Price: 150, CategoryID: mains.ID, Department: entity.DepartmentKitchen})

	log.Println("lookup tables seeded")
	return nil
}
