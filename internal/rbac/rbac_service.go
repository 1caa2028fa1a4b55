package rbac

import (
	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{
		enforcer: enforcer,
		logger:   zap.L().Named("rbac_service"),
	}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	ok, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err))
		return false, err
	}
	return ok, nil
}
