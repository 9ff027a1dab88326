package models

import (
	"github.com/soultrip/backend/internal/domain/journal"
)

// JournalEntryModel is the persistence model for journal.Entry
type JournalEntryModel struct {
	OwnedAggregateModel
	Title   string `gorm:"size:100;not null"`
	Content string `gorm:"type:text;not null"`
}

// TableName returns the table name for JournalEntryModel
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// ToDomain converts JournalEntryModel to domain Entry
func (m *JournalEntryModel) ToDomain() *journal.Entry {
	return &journal.Entry{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Title:              m.Title,
		Content:            m.Content,
	}
}

// JournalEntryModelFromDomain creates a JournalEntryModel from domain Entry
func JournalEntryModelFromDomain(e *journal.Entry) *JournalEntryModel {
	m := &JournalEntryModel{
		Title:   e.Title,
		Content: e.Content,
	}
	m.FromDomainOwnedAggregateRoot(e.OwnedAggregateRoot)
	return m
}
