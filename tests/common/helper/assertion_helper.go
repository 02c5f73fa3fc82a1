//go:build unit || e2e

package helper

import (
	"testing"

	"salon-broker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs checks target against the wrap chain and any marks on err.
func AssertErrorIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected error matching %q, got %v", target, err)
}
