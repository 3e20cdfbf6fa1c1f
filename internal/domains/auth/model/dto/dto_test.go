package dto_test

import (
	"deportur/internal/domains/auth/model/dto"
	"deportur/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperator_HasRole(t *testing.T) {
	operator := dto.Operator{Roles: []string{constant.RoleWorker}}

	assert.True(t, operator.HasRole(constant.RoleWorker))
	assert.False(t, operator.HasRole(constant.RoleAdmin))
}
