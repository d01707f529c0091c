package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentServiceCreate(t *testing.T) {
	f := newFixture()
	svc := NewPaymentService(f.payments, nil, nil)
	svc.now = func() time.Time { return fixedNow }

	payment, err := svc.Create(context.Background(), PaymentRequest{Montant: 50, Date: datePtr(2024, time.March, 2), Methode: "espèces"})
	require.NoError(t, err)
	assert.Equal(t, "REF-1710498600000", payment.Reference)

	named, err := svc.Create(context.Background(), PaymentRequest{Montant: 60, Date: datePtr(2024, time.March, 3), Methode: "chèque", Reference: " CHQ-42 "})
	require.NoError(t, err)
	assert.Equal(t, "CHQ-42", named.Reference)

	_, err = svc.Create(context.Background(), PaymentRequest{Montant: 0, Date: datePtr(2024, time.March, 3), Methode: "chèque"})
	requireAppError(t, err, http.StatusBadRequest, msgMissingFields)

	_, err = svc.Get(context.Background(), "missing")
	requireAppError(t, err, http.StatusNotFound, msgPaymentNotFound)
}

func TestPaymentServiceExportCSV(t *testing.T) {
	f := newFixture()
	svc := NewPaymentService(f.payments, nil, nil)
	payment, err := svc.Create(context.Background(), PaymentRequest{Montant: 12.5, Date: datePtr(2024, time.March, 2), Methode: "espèces", Reference: "R-1"})
	require.NoError(t, err)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,reference,date,methode,montant", lines[0])
	assert.Equal(t, payment.ID+",R-1,2024-03-02,espèces,12.50", lines[1])
}
