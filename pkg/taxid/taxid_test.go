package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/taxid"
)

func TestDetectYFormat(t *testing.T) {
	assert.Equal(t, taxid.KindCNPJ, taxid.Detect("11222333000181"))
	assert.Equal(t, taxid.KindCPF, taxid.Detect("529.982.247-25"))
	assert.Equal(t, taxid.KindUnknown, taxid.Detect("123"))

	assert.Equal(t, "11.222.333/0001-81", taxid.Format("11222333000181"))
	assert.Equal(t, "529.982.247-25", taxid.Format("52998224725"))
	assert.Equal(t, "N/A", taxid.Format("N/A"))
}

func TestValidateCheckDigits(t *testing.T) {
	assert.NoError(t, taxid.ValidateCheckDigits("11.222.333/0001-81"))
	assert.NoError(t, taxid.ValidateCheckDigits("52998224725"))
	assert.Error(t, taxid.ValidateCheckDigits("11.222.333/0001-82"))
	assert.Error(t, taxid.ValidateCheckDigits("529.982.247-26"))
	assert.Error(t, taxid.ValidateCheckDigits("1234"))
}
