package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"dabeli/internal/domain/service"

	"github.com/pkg/errors"
)

// ResetCodeDigits is the length of password reset codes.
const ResetCodeDigits = 6

type numericCodeGenerator struct {
	digits int
	max    *big.Int
}

// NewResetCodeGenerator returns a generator of six digit codes backed by crypto/rand.
func NewResetCodeGenerator() service.CodeGenerator {
	return newNumericCodeGenerator(ResetCodeDigits)
}

func newNumericCodeGenerator(digits int) *numericCodeGenerator {
	maxValue := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	return &numericCodeGenerator{digits: digits, max: maxValue}
}

// Generate returns a zero padded random code.
func (g *numericCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random code")
	}

	return fmt.Sprintf("%0*d", g.digits, n.Int64()), nil
}
