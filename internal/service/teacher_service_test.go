package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
)

func validTeacherRequest() TeacherRequest {
	return TeacherRequest{
		Nom:        " Dupont ",
		Prenom:     "Marie",
		Email:      "marie.dupont@example.com",
		Telephone:  "0600000000",
		Diplome:    "Master",
		Specialite: "Mathématiques",
		Status:     models.TeacherActive,
	}
}

func TestTeacherServiceCreateAndGet(t *testing.T) {
	f := newFixture()
	svc := NewTeacherService(f.teachers, nil, nil)

	blank := "  "
	req := validTeacherRequest()
	req.Adresse = &blank
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Dupont", created.Nom)
	assert.Nil(t, created.Adresse)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestTeacherServiceCreateMissingFields(t *testing.T) {
	svc := NewTeacherService(newFixture().teachers, nil, nil)

	req := validTeacherRequest()
	req.Telephone = ""
	_, err := svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)

	req = validTeacherRequest()
	req.Status = "retraite"
	_, err = svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)
}

func TestTeacherServiceAcceptsFreeFormEmail(t *testing.T) {
	svc := NewTeacherService(newFixture().teachers, nil, nil)

	req := validTeacherRequest()
	req.Email = "marie at centre"
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "marie at centre", created.Email)

	req.Email = ""
	_, err = svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)
}

func TestTeacherServiceGetUnknown(t *testing.T) {
	svc := NewTeacherService(newFixture().teachers, nil, nil)
	_, err := svc.Get(context.Background(), "missing")
	requireAppError(t, err, http.StatusNotFound, "Professeur non trouvé")
}

func TestTeacherServiceUpdateReplacesRecord(t *testing.T) {
	f := newFixture()
	svc := NewTeacherService(f.teachers, nil, nil)
	bio := "Ancienne"
	req := validTeacherRequest()
	req.Biographie = &bio
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	update := validTeacherRequest()
	update.Status = models.TeacherInactive
	updated, err := svc.Update(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TeacherInactive, loaded.Status)
	assert.Nil(t, loaded.Biographie)

	_, err = svc.Update(context.Background(), "missing", update)
	requireAppError(t, err, http.StatusNotFound, "Professeur non trouvé")
}

func TestTeacherServiceDeleteReferenced(t *testing.T) {
	f := newFixture()
	svc := NewTeacherService(f.teachers, nil, nil)
	teacher := f.teacher(t, "Dupont")
	f.session(t, f.course(t, "Maths", 20), teacher, f.room(t), models.NewDate(2024, time.March, 4), "10:00", 60)

	err := svc.Delete(context.Background(), teacher.ID)
	requireAppError(t, err, http.StatusConflict, "")

	loose := f.teacher(t, "Martin")
	require.NoError(t, svc.Delete(context.Background(), loose.ID))
	requireAppError(t, svc.Delete(context.Background(), loose.ID), http.StatusNotFound, "Professeur non trouvé")
}
