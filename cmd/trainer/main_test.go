package main

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "fairgrid/internal/models"
)

func TestLearnerFactory(t *testing.T) {
    p := models.DefaultParams()
    assert.NotNil(t, learnerFactory(p)())

    p.Algo = "svm"
    assert.Nil(t, learnerFactory(p)())
}
