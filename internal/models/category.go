package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType partitions categories per area of the application.
type CategoryType string

const (
	CategoryReceita CategoryType = "receita"
	CategoryDespesa CategoryType = "despesa"
	CategoryMercado CategoryType = "mercado"
	CategoryMeta    CategoryType = "meta"
)

var ErrCategoryTypeInvalid = errors.New("the category type must be one of: receita, despesa, mercado, meta")

// CategoryIcon is the closed set of icons the frontend can render.
// Unknown values fall back to IconDefault instead of failing lookups
// at render time.
type CategoryIcon string

const (
	IconDefault   CategoryIcon = "tag"
	IconHome      CategoryIcon = "home"
	IconFood      CategoryIcon = "utensils"
	IconTransport CategoryIcon = "car"
	IconHealth    CategoryIcon = "heart-pulse"
	IconEducation CategoryIcon = "graduation-cap"
	IconLeisure   CategoryIcon = "gamepad"
	IconSalary    CategoryIcon = "banknote"
	IconMarket    CategoryIcon = "shopping-cart"
	IconSavings   CategoryIcon = "piggy-bank"
	IconPet       CategoryIcon = "paw-print"
	IconGift      CategoryIcon = "gift"
)

var categoryIcons = map[CategoryIcon]bool{
	IconDefault:   true,
	IconHome:      true,
	IconFood:      true,
	IconTransport: true,
	IconHealth:    true,
	IconEducation: true,
	IconLeisure:   true,
	IconSalary:    true,
	IconMarket:    true,
	IconSavings:   true,
	IconPet:       true,
	IconGift:      true,
}

// Category classifies incomes, expenses, transactions, debts and goals.
type Category struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:category_name_type_user"`
	Name        string    `gorm:"uniqueIndex:category_name_type_user"`
	Type        CategoryType `gorm:"uniqueIndex:category_name_type_user"`
	Color       string
	Icon        CategoryIcon
	Description string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	switch c.Type {
	case CategoryReceita, CategoryDespesa, CategoryMercado, CategoryMeta:
	default:
		return ErrCategoryTypeInvalid
	}

	if !categoryIcons[c.Icon] {
		c.Icon = IconDefault
	}

	return nil
}

// BeforeDelete refuses the deletion while any record still references the
// category. Referential integrity is checked here instead of relying on a
// database cascade so that the user gets a readable breakdown of blockers.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	usage, err := c.Usage(tx)
	if err != nil {
		return err
	}

	if usage.Total() > 0 {
		return fmt.Errorf("%w: %s", ErrCategoryInUse, usage)
	}

	return nil
}

// CategoryUsage counts the records referencing a category, per entity type.
type CategoryUsage struct {
	Incomes        int64 `json:"receitas"`
	Expenses       int64 `json:"despesas"`
	Transactions   int64 `json:"transacoes"`
	Debts          int64 `json:"dividas"`
	ImportAnalyses int64 `json:"analisesImportacao"`
}

// Total is the number of referencing records across all entity types.
func (u CategoryUsage) Total() int64 {
	return u.Incomes + u.Expenses + u.Transactions + u.Debts + u.ImportAnalyses
}

// String renders the usage breakdown for error messages,
// e.g. "3 despesas, 1 dívida".
func (u CategoryUsage) String() string {
	var parts []string

	add := func(count int64, singular, plural string) {
		if count == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", singular))
		} else if count > 1 {
			parts = append(parts, fmt.Sprintf("%d %s", count, plural))
		}
	}

	add(u.Incomes, "receita", "receitas")
	add(u.Expenses, "despesa", "despesas")
	add(u.Transactions, "transação", "transações")
	add(u.Debts, "dívida", "dívidas")
	add(u.ImportAnalyses, "análise de importação", "análises de importação")

	return strings.Join(parts, ", ")
}

// Usage scans every entity type that can reference a category for rows
// belonging to the same user.
func (c Category) Usage(db *gorm.DB) (CategoryUsage, error) {
	var usage CategoryUsage

	counts := []struct {
		model any
		count *int64
	}{
		{&Income{}, &usage.Incomes},
		{&Expense{}, &usage.Expenses},
		{&Transaction{}, &usage.Transactions},
		{&Debt{}, &usage.Debts},
		{&ImportAnalysis{}, &usage.ImportAnalyses},
	}

	for _, scan := range counts {
		err := db.Model(scan.model).
			Where("category_id = ? AND user_id = ?", c.ID, c.UserID).
			Count(scan.count).Error
		if err != nil {
			return CategoryUsage{}, err
		}
	}

	return usage, nil
}

// DefaultCategories returns the categories seeded for a new account.
func DefaultCategories(userID uuid.UUID) []Category {
	return []Category{
		{UserID: userID, Name: "Salário", Type: CategoryReceita, Color: "#22c55e", Icon: IconSalary},
		{UserID: userID, Name: "Outras Receitas", Type: CategoryReceita, Color: "#10b981", Icon: IconDefault},
		{UserID: userID, Name: "Moradia", Type: CategoryDespesa, Color: "#3b82f6", Icon: IconHome},
		{UserID: userID, Name: "Alimentação", Type: CategoryDespesa, Color: "#f97316", Icon: IconFood},
		{UserID: userID, Name: "Transporte", Type: CategoryDespesa, Color: "#eab308", Icon: IconTransport},
		{UserID: userID, Name: "Saúde", Type: CategoryDespesa, Color: "#ef4444", Icon: IconHealth},
		{UserID: userID, Name: "Educação", Type: CategoryDespesa, Color: "#8b5cf6", Icon: IconEducation},
		{UserID: userID, Name: "Lazer", Type: CategoryDespesa, Color: "#ec4899", Icon: IconLeisure},
		{UserID: userID, Name: "Mercado", Type: CategoryMercado, Color: "#14b8a6", Icon: IconMarket},
		{UserID: userID, Name: "Reserva", Type: CategoryMeta, Color: "#6366f1", Icon: IconSavings},
	}
}
