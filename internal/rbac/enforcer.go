package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles carried in the JWT role claim.
const (
	RoleDirecao     = "DIRECAO"
	RoleFuncionario = "FUNCIONARIO"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// The permission matrix is static: the hospital has exactly two roles
// and the set of resources only changes with a deploy.
var policies = [][]string{
	{RoleDirecao, "employee", "read"},
	{RoleDirecao, "employee", "create"},
	{RoleDirecao, "employee", "update"},
	{RoleDirecao, "employee", "delete"},
	{RoleDirecao, "employee", "import"},
	{RoleDirecao, "department", "read"},
	{RoleDirecao, "department", "create"},
	{RoleDirecao, "department", "delete"},
	{RoleDirecao, "schedule", "read"},
	{RoleDirecao, "schedule", "read_own"},
	{RoleDirecao, "schedule", "generate"},
	{RoleDirecao, "schedule", "override"},
	{RoleDirecao, "schedule", "delete"},
	{RoleDirecao, "schedule", "export"},
	{RoleDirecao, "course", "read"},
	{RoleDirecao, "course", "create"},
	{RoleDirecao, "course", "delete"},
	{RoleDirecao, "course", "complete"},
	{RoleDirecao, "certificate", "read"},
	{RoleDirecao, "certificate", "read_own"},
	{RoleDirecao, "material_request", "create"},
	{RoleDirecao, "material_request", "read"},
	{RoleDirecao, "material_request", "read_own"},
	{RoleDirecao, "material_request", "decide"},
	{RoleDirecao, "material_request", "delete"},
	{RoleDirecao, "announcement", "read"},
	{RoleDirecao, "announcement", "create"},
	{RoleDirecao, "announcement", "delete"},
	{RoleDirecao, "report", "read"},
	{RoleDirecao, "message", "use"},

	{RoleFuncionario, "schedule", "read"},
	{RoleFuncionario, "schedule", "read_own"},
	{RoleFuncionario, "course", "read"},
	{RoleFuncionario, "course", "complete"},
	{RoleFuncionario, "certificate", "read_own"},
	{RoleFuncionario, "material_request", "create"},
	{RoleFuncionario, "material_request", "read_own"},
	{RoleFuncionario, "announcement", "read"},
	{RoleFuncionario, "message", "use"},
}

// NewEnforcer builds the in-memory enforcer; no storage adapter since the
// policy is code, not data.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
