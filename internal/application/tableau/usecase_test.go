package tableau_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	apptableau "github.com/frenchymerlincbd-source/pointeuse/internal/application/tableau"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeRepo struct {
	parID map[string]*entity.Employe
}

func (f *fakeEmployeRepo) Create(e *entity.Employe) error {
	f.parID[e.ID] = e
	return nil
}

func (f *fakeEmployeRepo) GetByID(id string) (*entity.Employe, error) {
	return f.parID[id], nil
}

func (f *fakeEmployeRepo) GetByEmail(string) (*entity.Employe, error) {
	return nil, nil
}

func (f *fakeEmployeRepo) Update(e *entity.Employe) error {
	f.parID[e.ID] = e
	return nil
}

func (f *fakeEmployeRepo) List(int, int) ([]*entity.Employe, error) {
	return nil, nil
}

func (f *fakeEmployeRepo) Delete(string) error {
	return nil
}

type fakeShiftRepo struct {
	shifts []*entity.Shift
}

func (f *fakeShiftRepo) Create(s *entity.Shift) error {
	f.shifts = append(f.shifts, s)
	return nil
}

func (f *fakeShiftRepo) CreateBatch(s []*entity.Shift) error {
	f.shifts = append(f.shifts, s...)
	return nil
}

func (f *fakeShiftRepo) GetByID(string) (*entity.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) Update(*entity.Shift) error {
	return nil
}

func (f *fakeShiftRepo) Delete(string) error {
	return nil
}
func (f *fakeShiftRepo) ListByEmployeStartBetween(_ context.Context, employeID string, from, to time.Time) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range f.shifts {
		if s.EmployeID == employeID && !s.StartAt.Before(from) && s.StartAt.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeShiftRepo) ListStartBetween(_ context.Context, from, to time.Time, boutique string) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range f.shifts {
		if !s.StartAt.Before(from) && s.StartAt.Before(to) && (boutique == "" || s.Boutique == boutique) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePointageRepo struct {
	pointages []*entity.Pointage
}

func (f *fakePointageRepo) Create(_ context.Context, p *entity.Pointage) error {
	f.pointages = append(f.pointages, p)
	return nil
}
func (f *fakePointageRepo) ListByEmployeBetween(context.Context, string, time.Time, time.Time) ([]*entity.Pointage, error) {
	return nil, nil
}
func (f *fakePointageRepo) ListByEmployesBetween(context.Context, []string, time.Time, time.Time) ([]*entity.Pointage, error) {
	return nil, nil
}
func (f *fakePointageRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.Pointage, error) {
	var out []*entity.Pointage
	for _, p := range f.pointages {
		if !p.Horodatage.Before(from) && p.Horodatage.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PointageRepository = (*fakePointageRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Montage
// ──────────────────────────────────────────────────────────────────────────────

// 09:00 UTC; fenêtre de jour UTC+60 min.
var neufHeures = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func monter(t *testing.T) (*apptableau.UseCase, *fakeEmployeRepo, *fakeShiftRepo, *fakePointageRepo) {
	t.Helper()
	employes := &fakeEmployeRepo{parID: map[string]*entity.Employe{}}
	shifts := &fakeShiftRepo{}
	pointages := &fakePointageRepo{}
	fenetre, err := presence.NewDayWindow(60)
	require.NoError(t, err)
	return apptableau.NewUseCase(employes, shifts, pointages, fenetre), employes, shifts, pointages
}

func employe(id, nom string) *entity.Employe {
	return &entity.Employe{ID: id, Nom: nom, Email: nom + "@boutique.fr", Actif: true}
}

func shift(id, employeID, boutique string, debut time.Time, duree time.Duration) *entity.Shift {
	return &entity.Shift{ID: id, EmployeID: employeID, Boutique: boutique, StartAt: debut, EndAt: debut.Add(duree)}
}

func pointage(employeID, typ string, at time.Time) *entity.Pointage {
	return &entity.Pointage{ID: employeID + "-" + typ + at.Format("150405"), EmployeID: employeID, Type: typ, Horodatage: at}
}

func ligneDe(t *testing.T, out *dto.TableauResponse, shiftID string) dto.TableauLigne {
	t.Helper()
	for _, l := range out.Lignes {
		if l.ShiftID == shiftID {
			return l
		}
	}
	t.Fatalf("ligne %s absente du tableau", shiftID)
	return dto.TableauLigne{}
}

// ──────────────────────────────────────────────────────────────────────────────
// StatutsDuJour
// ──────────────────────────────────────────────────────────────────────────────

// Journée mixte à 12:00: chaque shift reçoit le statut de son propre scénario.
func TestStatutsDuJour_JourneeMixte(t *testing.T) {
	uc, employes, shifts, pointages := monter(t)
	midi := neufHeures.Add(3 * time.Hour)

	// Alice: entrée à l'heure, shift en cours → PRESENT.
	employes.parID["a"] = employe("a", "Alice")
	shifts.shifts = append(shifts.shifts, shift("sh-a", "a", "Centre", neufHeures, 8*time.Hour))
	pointages.pointages = append(pointages.pointages, pointage("a", entity.PointageEntree, neufHeures.Add(2*time.Minute)))

	// Bruno: entrée 12 min après le début, seuil 5 → EN_RETARD (12 min).
	employes.parID["b"] = employe("b", "Bruno")
	shifts.shifts = append(shifts.shifts, shift("sh-b", "b", "Centre", neufHeures, 8*time.Hour))
	pointages.pointages = append(pointages.pointages, pointage("b", entity.PointageEntree, neufHeures.Add(12*time.Minute)))

	// Chloé: shift commencé, aucun pointage → ABSENT.
	employes.parID["c"] = employe("c", "Chloé")
	shifts.shifts = append(shifts.shifts, shift("sh-c", "c", "Gare", neufHeures, 8*time.Hour))

	// David: shift du matin terminé, entrée puis sortie vues → TERMINE.
	employes.parID["d"] = employe("d", "David")
	shifts.shifts = append(shifts.shifts, shift("sh-d", "d", "Gare", neufHeures.Add(-3*time.Hour), 5*time.Hour))
	pointages.pointages = append(pointages.pointages,
		pointage("d", entity.PointageEntree, neufHeures.Add(-3*time.Hour)),
		pointage("d", entity.PointageSortie, neufHeures.Add(2*time.Hour)),
	)

	// Emma: shift pas encore commencé → A_LHEURE.
	employes.parID["e"] = employe("e", "Emma")
	shifts.shifts = append(shifts.shifts, shift("sh-e", "e", "Centre", midi.Add(2*time.Hour), 6*time.Hour))

	out, err := uc.StatutsDuJour(context.Background(), midi, 5, "")
	require.NoError(t, err)
	require.Len(t, out.Lignes, 5, "une ligne par shift du jour")

	assert.Equal(t, string(presence.StatutPresent), ligneDe(t, out, "sh-a").Statut)

	bruno := ligneDe(t, out, "sh-b")
	assert.Equal(t, string(presence.StatutEnRetard), bruno.Statut)
	assert.Equal(t, 12, bruno.MinutesRetard, "le retard affiché doit venir de la même formule que l'alerte")

	assert.Equal(t, string(presence.StatutAbsent), ligneDe(t, out, "sh-c").Statut)
	assert.Equal(t, string(presence.StatutTermine), ligneDe(t, out, "sh-d").Statut)
	assert.Equal(t, string(presence.StatutALHeure), ligneDe(t, out, "sh-e").Statut)

	assert.ElementsMatch(t, []string{"Centre", "Gare"}, out.Boutiques, "les boutiques sont dédupliquées")
	assert.Equal(t, 5, out.SeuilMin)
}

// Une SORTIE isolée (aucune ENTREE vue ce jour-là) sur un shift terminé ne
// vaut pas service accompli: le shift reste ABSENT.
func TestStatutsDuJour_SortieIsoleeResteAbsent(t *testing.T) {
	uc, employes, shifts, pointages := monter(t)

	employes.parID["x"] = employe("x", "Xavier")
	shifts.shifts = append(shifts.shifts, shift("sh-x", "x", "", neufHeures, 4*time.Hour))
	pointages.pointages = append(pointages.pointages,
		pointage("x", entity.PointageSortie, neufHeures.Add(4*time.Hour)))

	out, err := uc.StatutsDuJour(context.Background(), neufHeures.Add(5*time.Hour), 5, "")
	require.NoError(t, err)
	require.Len(t, out.Lignes, 1)
	assert.Equal(t, string(presence.StatutAbsent), out.Lignes[0].Statut)
}

// Le filtre boutique ne garde que les shifts de la boutique demandée.
func TestStatutsDuJour_FiltreBoutique(t *testing.T) {
	uc, employes, shifts, _ := monter(t)

	employes.parID["a"] = employe("a", "Alice")
	employes.parID["b"] = employe("b", "Bruno")
	shifts.shifts = append(shifts.shifts,
		shift("sh-a", "a", "Centre", neufHeures, 8*time.Hour),
		shift("sh-b", "b", "Gare", neufHeures, 8*time.Hour),
	)

	out, err := uc.StatutsDuJour(context.Background(), neufHeures, 5, "Gare")
	require.NoError(t, err)
	require.Len(t, out.Lignes, 1)
	assert.Equal(t, "sh-b", out.Lignes[0].ShiftID)
}

// Un shift d'hier ne doit pas apparaître dans le tableau d'aujourd'hui.
func TestStatutsDuJour_ExclutHorsFenetre(t *testing.T) {
	uc, employes, shifts, _ := monter(t)

	employes.parID["a"] = employe("a", "Alice")
	shifts.shifts = append(shifts.shifts,
		shift("sh-hier", "a", "", neufHeures.AddDate(0, 0, -1), 8*time.Hour),
		shift("sh-auj", "a", "", neufHeures, 8*time.Hour),
	)

	out, err := uc.StatutsDuJour(context.Background(), neufHeures, 5, "")
	require.NoError(t, err)
	require.Len(t, out.Lignes, 1)
	assert.Equal(t, "sh-auj", out.Lignes[0].ShiftID)
}

func TestStatutsDuJour_SeuilNegatifRefuse(t *testing.T) {
	uc, _, _, _ := monter(t)
	_, err := uc.StatutsDuJour(context.Background(), neufHeures, -1, "")
	assert.ErrorIs(t, err, domain.ErrSeuilInvalide)
}
