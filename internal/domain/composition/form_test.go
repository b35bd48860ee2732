package composition

import (
	"testing"
	"time"

	"quote_desk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_AddServiceMergesBySum(t *testing.T) {
	f := NewForm(nil)
	f.AddService(entities.QuoteService{ServiceID: "a", Quantity: 2, Price: 100})
	f.AddService(entities.QuoteService{ServiceID: "a", Quantity: 3, Price: 999})

	require.Len(t, f.Services, 1)
	assert.Equal(t, 5, f.Services[0].Quantity)
	assert.Equal(t, 100.0, f.Services[0].Price)
	assert.Equal(t, 500.0, f.Total())
}

func TestForm_AddServiceAppendsNew(t *testing.T) {
	f := NewForm(nil)
	f.AddService(entities.QuoteService{ServiceID: "a", Quantity: 2, Price: 100})
	f.AddService(entities.QuoteService{ServiceID: "b", Quantity: 3, Price: 50})

	require.Len(t, f.Services, 2)
	assert.Equal(t, "b", f.Services[1].ServiceID)
	assert.Equal(t, 350.0, f.Total())
}

func TestForm_RemoveService(t *testing.T) {
	f := NewForm(nil)
	f.AddService(entities.QuoteService{ServiceID: "a", Quantity: 1, Price: 10})
	f.AddService(entities.QuoteService{ServiceID: "b", Quantity: 1, Price: 20})

	require.NoError(t, f.RemoveService(0))
	require.Len(t, f.Services, 1)
	assert.Equal(t, "b", f.Services[0].ServiceID)
	assert.Equal(t, 20.0, f.Total())

	assert.ErrorIs(t, f.RemoveService(5), ErrServiceIndexOutOfRange)
	assert.ErrorIs(t, f.RemoveService(-1), ErrServiceIndexOutOfRange)
	assert.Len(t, f.Services, 1)
}

func TestNewForm_CopiesInitialQuote(t *testing.T) {
	q := &entities.Quote{
		CustomerID: "c1",
		Status:     entities.QuoteStatusSent,
		Services:   []entities.QuoteService{{ServiceID: "a", Quantity: 1, Price: 10}},
	}
	f := NewForm(q)
	f.AddService(entities.QuoteService{ServiceID: "a", Quantity: 1})

	assert.Equal(t, 1, q.Services[0].Quantity, "initial quote must not be mutated")
	assert.Equal(t, entities.QuoteStatusSent, f.Status)

	var out entities.Quote
	f.ApplyTo(&out)
	assert.Equal(t, "c1", out.CustomerID)
	assert.Equal(t, 20.0, out.Total)
}

func TestForm_SetCustomer(t *testing.T) {
	f := NewForm(nil)
	_, ok := f.Customer()
	assert.False(t, ok)

	f.SetCustomer(entities.Customer{ID: "c9", Name: "Hotel California"})
	c, ok := f.Customer()
	assert.True(t, ok)
	assert.Equal(t, "c9", c.ID)
	assert.Equal(t, "c9", f.CustomerID)
}

func TestPicker(t *testing.T) {
	available := []entities.Service{
		{ID: "a", Name: "Hotel", BasePrice: 100},
		{ID: "b", Name: "Transfer", BasePrice: 50},
	}
	date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	t.Run("nothing selected", func(t *testing.T) {
		p := NewPicker(available)
		_, ok := p.Build(date)
		assert.False(t, ok)
	})

	t.Run("unknown service", func(t *testing.T) {
		p := NewPicker(available)
		assert.False(t, p.Select("zzz"))
	})

	t.Run("defaults to base price", func(t *testing.T) {
		p := NewPicker(available)
		require.True(t, p.Select("b"))
		p.SetQuantity(2)
		qs, ok := p.Build(date)
		require.True(t, ok)
		assert.Equal(t, entities.QuoteService{ServiceID: "b", Quantity: 2, Price: 50, Date: date}, qs)
	})

	t.Run("custom price wins", func(t *testing.T) {
		p := NewPicker(available)
		require.True(t, p.Select("a"))
		p.SetCustomPrice(0)
		qs, ok := p.Build(date)
		require.True(t, ok)
		assert.Equal(t, 0.0, qs.Price)
	})

	t.Run("zero quantity", func(t *testing.T) {
		p := NewPicker(available)
		require.True(t, p.Select("a"))
		p.SetQuantity(0)
		_, ok := p.Build(date)
		assert.False(t, ok)
	})

	t.Run("reset", func(t *testing.T) {
		p := NewPicker(available)
		require.True(t, p.Select("a"))
		p.SetQuantity(4)
		p.Reset()
		_, ok := p.Selected()
		assert.False(t, ok)
		require.True(t, p.Select("a"))
		qs, _ := p.Build(date)
		assert.Equal(t, 1, qs.Quantity)
	})
}
