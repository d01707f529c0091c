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

func validStudentRequest() StudentRequest {
	return StudentRequest{
		Nom:             "Bernard",
		Prenom:          "Léo",
		Email:           "leo@example.com",
		Telephone:       "0611111111",
		Niveau:          "3ème",
		TelParents:      "0622222222",
		DateInscription: datePtr(2023, time.September, 4),
	}
}

func TestStudentServiceCreateRequiresInscriptionDate(t *testing.T) {
	svc := NewStudentService(newFixture().students, nil, nil)

	req := validStudentRequest()
	req.DateInscription = nil
	_, err := svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)

	created, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "2023-09-04", created.DateInscription.String())
}

func TestStudentServiceDeleteRemovesEnrollments(t *testing.T) {
	f := newFixture()
	svc := NewStudentService(f.students, nil, nil)
	student := f.student(t, "Bernard")
	session := f.session(t, f.course(t, "Maths", 20), f.teacher(t, "Dupont"), f.room(t), models.NewDate(2024, time.March, 4), "10:00", 60, student.ID)

	require.NoError(t, svc.Delete(context.Background(), student.ID))

	loaded, err := f.sessions.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.StudentIDs)
	_, err = svc.Get(context.Background(), student.ID)
	requireAppError(t, err, http.StatusNotFound, "Élève non trouvé")
}

func TestStudentServiceDeleteWithReceiptConflicts(t *testing.T) {
	f := newFixture()
	svc := NewStudentService(f.students, nil, nil)
	student := f.student(t, "Bernard")
	course := f.course(t, "Maths", 20)
	receipts := NewReceiptService(f.receipts, f.students, nil, nil, nil)
	_, err := receipts.Generate(context.Background(), ReceiptRequest{StudentID: student.ID, CourseIDs: []string{course.ID}, Montant: 120, Methode: "espèces", Date: datePtr(2024, time.March, 1)})
	require.NoError(t, err)

	requireAppError(t, svc.Delete(context.Background(), student.ID), http.StatusConflict, "")
}
