package utils_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brandongr90/la-gruta-dashboard/utils"
)

func TestParseFloatOrZero(t *testing.T) {
	assert.Equal(t, 350.5, utils.ParseFloatOrZero("350.50"))
	assert.Equal(t, 100.0, utils.ParseFloatOrZero(" 100 "))
	assert.Equal(t, 0.0, utils.ParseFloatOrZero(""))
	assert.Equal(t, 0.0, utils.ParseFloatOrZero("abc"))
	assert.Equal(t, 0.0, utils.ParseFloatOrZero("-12.50"), "amounts are non-negative")
}

func TestParseIntOrZero(t *testing.T) {
	assert.Equal(t, 7, utils.ParseIntOrZero("7"))
	assert.Equal(t, 12, utils.ParseIntOrZero("12.0"))
	assert.Equal(t, 0, utils.ParseIntOrZero(""))
	assert.Equal(t, 0, utils.ParseIntOrZero("tres"))
	assert.Equal(t, 0, utils.ParseIntOrZero("-4"))
}

func TestNullStringHelpers(t *testing.T) {
	assert.Equal(t, "hola", utils.NullStringToString(sql.NullString{String: "hola", Valid: true}))
	assert.Equal(t, "", utils.NullStringToString(sql.NullString{}))

	p := utils.NullStringToStringPtr(sql.NullString{String: "hola", Valid: true})
	if assert.NotNil(t, p) {
		assert.Equal(t, "hola", *p)
	}
	assert.Nil(t, utils.NullStringToStringPtr(sql.NullString{}))
}
