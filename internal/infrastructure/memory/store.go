// Package memory implementa las fachadas de API contra un store en memoria
// con datos de ejemplo. Es el backing del modo demo: misma semántica de
// filtrado, paginación y errores que la fachada real, sin backend.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain/entity"
)

// adminUser credencial del administrador demo.
type adminUser struct {
	user         dto.BackendUser
	passwordHash []byte
}

// Store estado mutable compartido por las fachadas mock. Un único mutex
// protege todas las colecciones: el volumen es de demo, no hace falta más.
type Store struct {
	mu sync.RWMutex

	accounts     []entity.Account
	projects     []entity.Project
	roles        []entity.Role
	designations []entity.Designation
	users        []entity.User

	admins map[string]adminUser

	// Secuencias de emisión de códigos de negocio. Avanzan siempre, nunca
	// retroceden con los borrados: un código emitido no se reutiliza.
	accountSeq int
	projectSeq int
}

// NewStore construye el store sembrado con los datos de ejemplo.
func NewStore() *Store {
	s := &Store{admins: map[string]adminUser{}}
	s.seed()
	return s
}

// DemoAdminEmail y DemoAdminPassword credenciales del administrador sembrado.
const (
	DemoAdminEmail    = "admin@infield.test"
	DemoAdminPassword = "infield-demo-2024"
)

func (s *Store) seed() {
	now := time.Now().UTC()
	iso := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
	}

	s.accounts = []entity.Account{
		{ID: uuid.NewString(), Name: "Acme Corp", Code: "ACC-000001", PrimaryAdminName: "Lucía Herrera", PrimaryAdminEmail: "admin@acme.test", ProjectsActiveCount: 2, Status: entity.StatusActive, CreatedAtIso: iso(240)},
		{ID: uuid.NewString(), Name: "Acme West", Code: "ACC-000002", PrimaryAdminName: "Tomás Quiroga", PrimaryAdminEmail: "west@acme.test", ProjectsActiveCount: 0, Status: entity.StatusInactive, CreatedAtIso: iso(180)},
		{ID: uuid.NewString(), Name: "Borealis Retail", Code: "ACC-000003", PrimaryAdminName: "Sofía Paredes", PrimaryAdminEmail: "ops@borealis.test", ProjectsActiveCount: 1, Status: entity.StatusActive, CreatedAtIso: iso(95)},
		{ID: uuid.NewString(), Name: "Cobalt Foods", Code: "ACC-000004", PrimaryAdminName: "Diego Salas", PrimaryAdminEmail: "it@cobaltfoods.test", ProjectsActiveCount: 1, Status: entity.StatusActive, CreatedAtIso: iso(30)},
	}
	s.accountSeq = len(s.accounts)

	s.projects = []entity.Project{
		{ID: uuid.NewString(), AccountCode: "ACC-000001", Name: "Planta Norte", Code: "PRJ-000001", RegionLabel: "Norte", ProjectAdminName: "Marta Ibáñez", ProjectAdminEmail: "norte@acme.test", ModulesActive: []string{"inventario", "asistencia"}, Status: entity.StatusActive},
		{ID: uuid.NewString(), AccountCode: "ACC-000001", Name: "Planta Sur", Code: "PRJ-000002", RegionLabel: "Sur", ProjectAdminName: "Raúl Ortega", ProjectAdminEmail: "sur@acme.test", ModulesActive: []string{"inventario"}, Status: entity.StatusActive},
		{ID: uuid.NewString(), AccountCode: "ACC-000003", Name: "Tiendas Centro", Code: "PRJ-000003", RegionLabel: "Centro", ProjectAdminName: "Elena Vidal", ProjectAdminEmail: "centro@borealis.test", ModulesActive: []string{"asistencia"}, Status: entity.StatusActive},
		{ID: uuid.NewString(), AccountCode: "ACC-000004", Name: "Almacén Principal", Code: "PRJ-000004", RegionLabel: "Metropolitana", ProjectAdminName: "Javier Peña", ProjectAdminEmail: "almacen@cobaltfoods.test", ModulesActive: []string{"inventario"}, Status: entity.StatusInactive},
	}
	s.projectSeq = len(s.projects)

	acmeNorte := s.projects[0].ID
	adminRole := entity.Role{ID: uuid.NewString(), ProjectID: acmeNorte, RoleName: "Administrador", Level: 1, IsActive: true, CreatedAt: iso(200)}
	supervisorRole := entity.Role{ID: uuid.NewString(), ProjectID: acmeNorte, RoleName: "Supervisor", Level: 2, IsActive: true, CreatedAt: iso(200)}
	operarioRole := entity.Role{ID: uuid.NewString(), ProjectID: acmeNorte, RoleName: "Operario", Level: 5, IsActive: true, CreatedAt: iso(199)}
	s.roles = []entity.Role{adminRole, supervisorRole, operarioRole}

	s.designations = []entity.Designation{
		{ID: uuid.NewString(), ProjectID: acmeNorte, Name: "Jefe de Planta", RoleID: adminRole.ID, RoleName: adminRole.RoleName, Permissions: []string{"usuarios:gestionar", "reportes:ver"}, Access: entity.AccessWeb, IsActive: true, CreatedAt: iso(198)},
		{ID: uuid.NewString(), ProjectID: acmeNorte, Name: "Encargado de Turno", RoleID: supervisorRole.ID, RoleName: supervisorRole.RoleName, Permissions: []string{"asistencia:registrar"}, Access: entity.AccessBoth, IsActive: true, CreatedAt: iso(190)},
		{ID: uuid.NewString(), ProjectID: acmeNorte, Name: "Operador de Almacén", RoleID: operarioRole.ID, RoleName: operarioRole.RoleName, Permissions: []string{}, Access: entity.AccessMobile, IsActive: true, CreatedAt: iso(185)},
	}

	s.users = []entity.User{
		{ID: uuid.NewString(), AccountCode: "ACC-000001", ProjectCode: "PRJ-000001", Name: "Carmen Rojas", EmployeeCode: "EMP-0001", Email: "carmen.rojas@acme.test", Designation: "Jefe de Planta", SystemRole: "Administrador", AssignedStoresLabel: "Todas", Status: entity.StatusActive},
		{ID: uuid.NewString(), AccountCode: "ACC-000001", ProjectCode: "PRJ-000001", Name: "Pablo Miranda", EmployeeCode: "EMP-0002", Email: "pablo.miranda@acme.test", Designation: "Encargado de Turno", SystemRole: "Supervisor", AssignedStoresLabel: "Bodega 3", Status: entity.StatusActive},
		{ID: uuid.NewString(), AccountCode: "ACC-000001", ProjectCode: "PRJ-000001", Name: "Ana Fuentes", EmployeeCode: "EMP-0003", Email: "ana.fuentes@acme.test", Designation: "Operador de Almacén", SystemRole: "Operario", AssignedStoresLabel: "Bodega 1; Bodega 2", Status: entity.StatusOnboarding},
		{ID: uuid.NewString(), AccountCode: "ACC-000003", ProjectCode: "PRJ-000003", Name: "Iván Cornejo", EmployeeCode: "EMP-0101", Email: "ivan.cornejo@borealis.test", Designation: "Encargado de Tienda", SystemRole: "Supervisor", AssignedStoresLabel: "Tienda Centro", Status: entity.StatusInactive},
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	s.admins[DemoAdminEmail] = adminUser{
		user:         dto.BackendUser{ID: uuid.NewString(), Email: DemoAdminEmail, Name: "Administrador Demo", Role: "superadmin"},
		passwordHash: hash,
	}
}

// nextAccountCode emite el siguiente código de cuenta de la secuencia.
// Se llama con el lock de escritura tomado.
func (s *Store) nextAccountCode() string {
	s.accountSeq++
	return fmt.Sprintf("ACC-%06d", s.accountSeq)
}

// nextProjectCode emite el siguiente código de proyecto de la secuencia.
func (s *Store) nextProjectCode() string {
	s.projectSeq++
	return fmt.Sprintf("PRJ-%06d", s.projectSeq)
}
