package mapper

import (
	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// Project mapea BackendProject al modelo del frontend. El backend organiza
// los proyectos por accountId opaco; el accountCode legible llega por
// separado desde el llamador (puede ser vacío en lecturas por id).
func Project(b dto.BackendProject, accountCode string) entity.Project {
	return entity.Project{
		ID:                firstNonEmpty(b.ID, b.MongoID, b.ProjectCode),
		AccountCode:       accountCode,
		Name:              firstNonEmpty(b.ProjectName, b.Name),
		Code:              firstNonEmpty(b.ProjectCode, b.Code),
		ProjectAdminName:  "", // el backend aún no expone este campo
		ProjectAdminEmail: b.Email,
		ModulesActive:     []string{},
		Status:            statusOrActive(b.Status),
	}
}
