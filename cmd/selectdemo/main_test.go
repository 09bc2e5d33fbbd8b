package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zamm-dev/zamm-select/internal/models"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, 1, getExitCode(models.NewSelectError(models.ErrTypeValidation, "bad")))
	assert.Equal(t, 1, getExitCode(models.NewSelectError(models.ErrTypeNotFound, "missing")))
	assert.Equal(t, 2, getExitCode(models.NewSelectError(models.ErrTypeSystem, "broken")))
	assert.Equal(t, 2, getExitCode(errors.New("plain")))
	assert.Equal(t, 1, getExitCode(wrapped(models.NewSelectError(models.ErrTypeValidation, "bad"))))
}

func wrapped(err error) error {
	return errors.Join(errors.New("context"), err)
}
