// Package taxid reúne utilidades para documentos fiscales brasileños (CPF y CNPJ).
package taxid

import (
	"fmt"
	"unicode"
)

// Kind tipo de documento según la cantidad de dígitos.
type Kind string

const (
	KindCPF     Kind = "CPF"  // persona física, 11 dígitos
	KindCNPJ    Kind = "CNPJ" // persona jurídica, 14 dígitos
	KindUnknown Kind = ""
)

// pesos módulo 11 para los dígitos verificadores (Receita Federal).
var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Digits devuelve solo los dígitos del documento ("47.180.625/0058-81" -> "47180625005881").
func Digits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Detect clasifica el documento: 11 dígitos = CPF, 14 = CNPJ, cualquier otro largo = desconocido.
func Detect(s string) Kind {
	switch len(Digits(s)) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Format aplica la máscara oficial. Si el largo no corresponde a CPF ni CNPJ devuelve la entrada sin cambios.
func Format(s string) string {
	d := Digits(s)
	switch len(d) {
	case 11:
		return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
	case 14:
		return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
	default:
		return s
	}
}

// ValidateCheckDigits verifica los dos dígitos verificadores del CPF o CNPJ.
func ValidateCheckDigits(s string) error {
	d := Digits(s)
	var w1, w2 []int
	switch len(d) {
	case 11:
		w1, w2 = cpfWeights1, cpfWeights2
	case 14:
		w1, w2 = cnpjWeights1, cnpjWeights2
	default:
		return fmt.Errorf("taxid: se esperaban 11 o 14 dígitos, se encontraron %d", len(d))
	}
	base := len(w1)
	first := checkDigit(d[:base], w1)
	second := checkDigit(d[:base]+string(first), w2)
	if d[base] != first || d[base+1] != second {
		return fmt.Errorf("taxid: dígitos verificadores inválidos: esperado %c%c, recibido %s", first, second, d[base:])
	}
	return nil
}

func checkDigit(digits string, weights []int) byte {
	var sum int
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}
