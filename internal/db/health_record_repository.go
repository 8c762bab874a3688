package db

import (
	"github.com/helenmarch/vita/internal/models"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	database *gorm.DB
}

func NewHealthRecordRepository(database *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{database: database}
}

// ListByCustomer returns every record for the customer, newest date first.
func (repo *HealthRecordRepository) ListByCustomer(userID uint, customerID uint) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND customer_id = ?", userID, customerID).
		Order("date_key DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByCustomerRange returns records whose date key falls inside the
// inclusive [from, to] range, oldest first. Date keys are zero-padded
// YYYY-MM-DD strings, so plain string comparison orders them correctly.
func (repo *HealthRecordRepository) ListByCustomerRange(userID uint, customerID uint, fromKey string, toKey string) ([]models.HealthRecord, error) {
	query := repo.database.Where("user_id = ? AND customer_id = ?", userID, customerID)
	if fromKey != "" {
		query = query.Where("date_key >= ?", fromKey)
	}
	if toKey != "" {
		query = query.Where("date_key <= ?", toKey)
	}

	records := make([]models.HealthRecord, 0)
	if err := query.Order("date_key ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) FindByCustomerAndDate(userID uint, customerID uint, dateKey string) (models.HealthRecord, bool, error) {
	var record models.HealthRecord
	result := repo.database.
		Where("user_id = ? AND customer_id = ? AND date_key = ?", userID, customerID, dateKey).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.HealthRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *HealthRecordRepository) DeleteByCustomerAndDate(userID uint, customerID uint, dateKey string) error {
	return repo.database.
		Where("user_id = ? AND customer_id = ? AND date_key = ?", userID, customerID, dateKey).
		Delete(&models.HealthRecord{}).Error
}
