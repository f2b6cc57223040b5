package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sikte-go/sikte/internal/tracererr"
)

func TestAdmitRejectsBothTargets(t *testing.T) {
	_, err := Admit(nil, Target{Pids: []int32{1}, Command: []string{"sleep"}})
	assert.True(t, tracererr.IsKind(err, tracererr.ErrAdmission))
	assert.ErrorIs(t, err, tracererr.ErrBothTargets)
}

func TestAdmitRejectsNoTarget(t *testing.T) {
	_, err := Admit(nil, Target{})
	assert.ErrorIs(t, err, tracererr.ErrNoTarget)
}

func TestAdmitCommandRejectsEmptyArgv(t *testing.T) {
	_, err := admitCommand(nil, nil)
	assert.ErrorIs(t, err, tracererr.ErrEmptyCommand)
}
