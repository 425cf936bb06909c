package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	f := Default()
	assert.Equal(t, "Rp 15.000", f.Format(15000))
	assert.Equal(t, "Rp 1.250.000", f.Format(1250000))
	assert.Equal(t, "Rp 0", f.Format(0))
	assert.Equal(t, "-Rp 2.500", f.Format(-2500))
}

func TestFormatEnglish(t *testing.T) {
	f := New("en", "usd")
	assert.Equal(t, "$ 1,234", f.Format(1234))
	assert.Equal(t, "1,234", f.Number(1234))
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	f := New("%%", "XYZ")
	assert.Equal(t, "XYZ 15.000", f.Format(15000))
}
