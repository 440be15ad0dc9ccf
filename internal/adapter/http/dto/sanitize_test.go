package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct(t *testing.T) {
	req := SendRequest{
		Address: "  bc1qxyz\n",
		Amount:  0.5,
		Comment: "\trent ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "bc1qxyz", req.Address)
	assert.Equal(t, "rent", req.Comment)
	assert.Equal(t, 0.5, req.Amount)
}

func TestSanitizeStruct_IgnoresNonStructPointers(t *testing.T) {
	s := " padded "
	SanitizeStruct(s)  // not a pointer
	SanitizeStruct(&s) // not a struct
	assert.Equal(t, " padded ", s)
}
