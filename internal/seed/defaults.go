package seed

import (
	"time"

	"github.com/thenoetrevino/bidboard/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultCards returns the demo pipeline shown on first launch
func DefaultCards() []models.Card {
	return []models.Card{
		{
			ID: "rfp-1", Title: "Enterprise Software Overhaul", Client: "Innovate Corp",
			Value: 250000, ColumnID: models.ColumnNew, DueDate: date(2024, time.August, 30),
			Requirements: "## Scope\n\nReplace the legacy ERP with a modular platform.\n\n- SSO integration\n- Data migration of 10 years of records",
		},
		{
			ID: "rfp-2", Title: "Cloud Migration Strategy", Client: "DataStream LLC",
			Value: 150000, ColumnID: models.ColumnNew, DueDate: date(2024, time.September, 15),
			Requirements: "Assess on-prem workloads and propose a phased **cloud migration** plan.",
		},
		{
			ID: "rfp-3", Title: "Marketing Analytics Platform", Client: "MarketMinds",
			Value: 75000, ColumnID: models.ColumnInProgress, DueDate: date(2024, time.August, 25),
			Requirements: "Unified dashboard for campaign attribution across *all* paid channels.",
		},
		{
			ID: "rfp-4", Title: "Security Infrastructure Audit", Client: "SecureNet",
			Value: 120000, ColumnID: models.ColumnSubmitted, DueDate: date(2024, time.August, 10),
			Requirements: "Third-party audit of network segmentation, IAM and incident response.",
		},
		{
			ID: "rfp-5", Title: "Website Redesign", Client: "Creative Solutions",
			Value: 50000, ColumnID: models.ColumnWon, DueDate: date(2024, time.July, 20),
			Requirements: "Responsive redesign of the public website with a headless CMS.",
		},
	}
}

// DefaultClients returns the demo client list
func DefaultClients() []models.Client {
	return []models.Client{
		{ID: "CLI001", Name: "Innovate Corp", ContactPerson: "John Doe", Email: "john.d@innovate.com"},
		{ID: "CLI002", Name: "Solutions Inc.", ContactPerson: "Jane Smith", Email: "jane.s@solutions.com"},
		{ID: "CLI003", Name: "Synergy Partners", ContactPerson: "Peter Jones", Email: "peter.j@synergy.com"},
		{ID: "CLI004", Name: "Tech Giants LLC", ContactPerson: "Mary Johnson", Email: "mary.j@techgiants.com"},
		{ID: "CLI005", Name: "Future Systems", ContactPerson: "David Brown", Email: "david.b@future.com"},
	}
}
