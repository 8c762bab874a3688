package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Customers     *CustomerRepository
	HealthRecords *HealthRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Customers:     NewCustomerRepository(database),
		HealthRecords: NewHealthRecordRepository(database),
	}
}
