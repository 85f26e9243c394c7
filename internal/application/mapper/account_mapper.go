package mapper

import (
	"time"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// Account mapea BackendAccount al modelo del frontend.
// El id se resuelve en cascada: id explícito -> _id (Mongo) -> accountCode.
// Nunca falla por un id ausente; sintetiza un valor degradado pero usable.
func Account(b dto.BackendAccount) entity.Account {
	return entity.Account{
		ID:                  firstNonEmpty(b.ID, b.MongoID, b.AccountCode),
		Name:                firstNonEmpty(b.AccountName, b.Name),
		Code:                firstNonEmpty(b.AccountCode, b.Code),
		PrimaryAdminName:    "", // el backend aún no expone este campo
		PrimaryAdminEmail:   b.Email,
		ProjectsActiveCount: b.ProjectsActiveCount,
		Status:              statusOrActive(b.Status),
		CreatedAtIso:        createdAtOrNow(b.CreatedAt),
	}
}

// statusOrActive trata la ausencia de estado como ACTIVE antes de mapear.
func statusOrActive(backend string) entity.Status {
	if backend == "" {
		backend = "ACTIVE"
	}
	return Status(backend)
}

func createdAtOrNow(iso string) string {
	if iso != "" {
		return iso
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
