package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ormeau/folio/internal/models"
)

func TestListContacts_NewestFirst(t *testing.T) {
	db := testDB(t)

	older := &models.Contact{
		Name: "A", Email: "a@example.com", Subject: "first", Message: "hi",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.Contact{
		Name: "B", Email: "b@example.com", Subject: "second", Message: "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.CreateContact(older))
	require.NoError(t, db.CreateContact(newer))

	contacts, err := db.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "second", contacts[0].Subject)
	assert.Equal(t, "first", contacts[1].Subject)
}

func TestMarkContactRead(t *testing.T) {
	db := testDB(t)

	contact := &models.Contact{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"}
	require.NoError(t, db.CreateContact(contact))
	assert.False(t, contact.Read)

	require.NoError(t, db.MarkContactRead(contact.ID))

	got, err := db.GetContact(contact.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	// Marking again is harmless
	require.NoError(t, db.MarkContactRead(contact.ID))
	got, err = db.GetContact(contact.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestDeleteContact(t *testing.T) {
	db := testDB(t)

	contact := &models.Contact{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"}
	require.NoError(t, db.CreateContact(contact))
	require.NoError(t, db.DeleteContact(contact.ID))

	got, err := db.GetContact(contact.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListSkills_ByCategory(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.CreateSkill(&models.Skill{Name: "React", Level: 85, Category: models.CategoryFrontend}))
	require.NoError(t, db.CreateSkill(&models.Skill{Name: "Flask", Level: 80, Category: models.CategoryBackend}))

	frontend, err := db.ListSkills(models.CategoryFrontend)
	require.NoError(t, err)
	require.Len(t, frontend, 1)
	assert.Equal(t, "React", frontend[0].Name)

	all, err := db.ListSkills("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
