package db

import (
	"github.com/helenmarch/vita/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	database *gorm.DB
}

func NewCustomerRepository(database *gorm.DB) *CustomerRepository {
	return &CustomerRepository{database: database}
}

// ListByUser returns the user's customers ordered by last name, then first
// name, so the dashboard picker is stable across saves.
func (repo *CustomerRepository) ListByUser(userID uint) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (repo *CustomerRepository) FindByPublicID(userID uint, publicID string) (models.Customer, error) {
	var customer models.Customer
	if err := repo.database.
		Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (repo *CustomerRepository) Create(customer *models.Customer) error {
	return repo.database.Create(customer).Error
}

func (repo *CustomerRepository) Save(customer *models.Customer) error {
	return repo.database.Save(customer).Error
}

// DeleteCascade removes the customer and every health record it owns as one
// transaction; a partial delete must never survive.
func (repo *CustomerRepository) DeleteCascade(userID uint, customerID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND customer_id = ?", userID, customerID).
			Delete(&models.HealthRecord{}).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND id = ?", userID, customerID).
			Delete(&models.Customer{}).Error
	})
}
