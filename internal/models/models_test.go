package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfileGet(t *testing.T) {
	profile := Profile{
		FieldHousing: decimal.NewFromInt(400),
	}

	assert.Equal(t, "400", profile.Get(FieldHousing).String())
	assert.True(t, profile.Get(FieldTuition).IsZero())

	var nilProfile Profile
	assert.True(t, nilProfile.Get(FieldHousing).IsZero())
}

func TestProfileMerge(t *testing.T) {
	profile := Profile{
		FieldMonthlyIncome: decimal.NewFromInt(1000),
		FieldHousing:       decimal.NewFromInt(400),
	}

	profile.Merge(Profile{
		FieldHousing: decimal.NewFromInt(450),
		FieldTuition: decimal.NewFromInt(200),
	})

	assert.Equal(t, "1000", profile.Get(FieldMonthlyIncome).String())
	assert.Equal(t, "450", profile.Get(FieldHousing).String())
	assert.Equal(t, "200", profile.Get(FieldTuition).String())
}
