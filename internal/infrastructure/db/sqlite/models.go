package sqlite

import (
	"time"

	"github.com/lendvault/lending-api/internal/core/domain"
)

// Persistence models carry the GORM schema tags; the association fields
// exist so AutoMigrate declares the foreign-key constraints. Domain entities
// stay free of storage concerns, mirrored through the converters below.

type userModel struct {
	ID           uint    `gorm:"primaryKey"`
	GoogleID     *string `gorm:"uniqueIndex"`
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash *string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type taskModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"not null;index"`
	User        *userModel `gorm:"foreignKey:UserID"`
	Description string     `gorm:"column:tasks;not null"`
	Status      string     `gorm:"not null;default:active"`
	CreatedAt   time.Time
}

func (taskModel) TableName() string { return "tasks" }

type loanModel struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"not null;index"`
	User         *userModel `gorm:"foreignKey:UserID"`
	GoldItems    string     `gorm:"not null"`
	Amount       float64    `gorm:"not null"`
	InterestRate float64    `gorm:"not null"`
	Status       string     `gorm:"not null;default:active"`
	CreatedAt    time.Time
}

func (loanModel) TableName() string { return "loans" }

type paymentModel struct {
	ID          uint       `gorm:"primaryKey"`
	LoanID      uint       `gorm:"not null;index"`
	Loan        *loanModel `gorm:"foreignKey:LoanID"`
	Amount      float64    `gorm:"not null"`
	PaymentDate time.Time  `gorm:"not null"`
	PaymentType string     `gorm:"not null"`
	CreatedAt   time.Time
}

func (paymentModel) TableName() string { return "payments" }

func toDomainUser(m *userModel) *domain.User {
	u := &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
	if m.GoogleID != nil {
		u.GoogleID = *m.GoogleID
	}
	if m.PasswordHash != nil {
		u.PasswordHash = *m.PasswordHash
	}
	return u
}

func fromDomainUser(u *domain.User) *userModel {
	m := &userModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
	if u.GoogleID != "" {
		m.GoogleID = &u.GoogleID
	}
	if u.PasswordHash != "" {
		m.PasswordHash = &u.PasswordHash
	}
	return m
}

func toDomainTask(m *taskModel) *domain.Task {
	return &domain.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Status:      domain.TaskStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainTask(t *domain.Task) *taskModel {
	return &taskModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

func toDomainLoan(m *loanModel) *domain.Loan {
	return &domain.Loan{
		ID:           m.ID,
		UserID:       m.UserID,
		GoldItems:    m.GoldItems,
		Amount:       m.Amount,
		InterestRate: m.InterestRate,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainLoan(l *domain.Loan) *loanModel {
	return &loanModel{
		ID:           l.ID,
		UserID:       l.UserID,
		GoldItems:    l.GoldItems,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
}

func toDomainPayment(m *paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:          m.ID,
		LoanID:      m.LoanID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		PaymentType: m.PaymentType,
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainPayment(p *domain.Payment) *paymentModel {
	return &paymentModel{
		ID:          p.ID,
		LoanID:      p.LoanID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		PaymentType: p.PaymentType,
		CreatedAt:   p.CreatedAt,
	}
}
