package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	settlementapp "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/domain/settlement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	engine      *gin.Engine
	vendorRepo  *mockVendorRepository
	summaryRepo *mockDailySummaryRepository
	paymentRepo *mockVendorPaymentRepository
	orderRepo   *mockOrderRepository
}

func setupLedgerHandler(t *testing.T) *ledgerFixture {
	t.Helper()
	f := &ledgerFixture{
		vendorRepo:  newMockVendorRepository(),
		summaryRepo: newMockDailySummaryRepository(),
		paymentRepo: newMockVendorPaymentRepository(),
		orderRepo:   newMockOrderRepository(),
	}
	ledgerService := settlementapp.NewLedgerService(
		f.vendorRepo, f.summaryRepo, f.paymentRepo, f.orderRepo, nil)
	financeService := settlementapp.NewVendorFinanceService(
		f.vendorRepo, f.summaryRepo, f.paymentRepo, nil)

	f.engine = gin.New()
	api := f.engine.Group("/api/v1")
	NewLedgerHandler(ledgerService, financeService).RegisterRoutes(api)
	return f
}

func TestLedgerHandler_GetVendorLedger(t *testing.T) {
	f := setupLedgerHandler(t)

	vendor := newTestVendor(t, "Kurunegala Farms", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendor))

	day1 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	summary := settlement.NewDailySummary(vendor.ID, day1,
		decimal.RequireFromString("100"), decimal.RequireFromString("150"), decimal.RequireFromString("5000"))
	require.NoError(t, f.summaryRepo.Create(nil, summary))
	require.NoError(t, f.paymentRepo.Create(nil,
		settlement.NewVendorPayment(vendor.ID, day2, decimal.RequireFromString("4000"), "CASH", "")))

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/vendors/"+vendor.ID.String(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var ledger settlementapp.VendorLedgerView
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &ledger))

	assert.Equal(t, "Kurunegala Farms", ledger.VendorName)
	assert.Equal(t, "15000", ledger.TotalCalculatedAmount.String())
	// 5000 captured against orders + the standalone 4000
	assert.Equal(t, "9000", ledger.TotalPaidAmount.String())
	assert.Equal(t, "6000", ledger.TotalDueAmount.String())
	require.Len(t, ledger.Entries, 2)
	// Entries are presented latest-first
	assert.Equal(t, settlement.LedgerEntryTypePayment, ledger.Entries[0].Type)
	assert.Contains(t, ledger.Entries[0].Description, "Payment - CASH")
	assert.Equal(t, settlement.LedgerEntryTypeInvoice, ledger.Entries[1].Type)
	assert.Contains(t, ledger.Entries[1].Description, "Daily Summary -")
}

func TestLedgerHandler_GetVendorLedger_UnknownVendor(t *testing.T) {
	f := setupLedgerHandler(t)

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/vendors/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/vendors/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLedgerHandler_RecordPayment(t *testing.T) {
	f := setupLedgerHandler(t)

	vendor := newTestVendor(t, "Kurunegala Farms", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendor))

	body, _ := json.Marshal(gin.H{
		"vendor_id":      vendor.ID.String(),
		"amount":         "2500.50",
		"payment_date":   "2026-05-03",
		"payment_method": "BANK_TRANSFER",
		"notes":          "weekly settlement",
	})
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/ledger/payments", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var payment settlement.VendorPayment
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &payment))
	assert.Equal(t, vendor.ID, payment.VendorID)
	assert.Equal(t, "2500.5", payment.Amount.String())
	assert.Equal(t, "BANK_TRANSFER", payment.PaymentMethod)
	assert.Equal(t, "weekly settlement", payment.Notes)

	stored, err := f.paymentRepo.FindByVendor(nil, vendor.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestLedgerHandler_RecordPayment_Validation(t *testing.T) {
	f := setupLedgerHandler(t)

	vendor := newTestVendor(t, "Kurunegala Farms", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendor))

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing vendor_id", gin.H{"amount": "100", "payment_date": "2026-05-03", "payment_method": "CASH"}},
		{"zero amount", gin.H{"vendor_id": vendor.ID.String(), "amount": "0", "payment_date": "2026-05-03", "payment_method": "CASH"}},
		{"negative amount", gin.H{"vendor_id": vendor.ID.String(), "amount": "-50", "payment_date": "2026-05-03", "payment_method": "CASH"}},
		{"malformed date", gin.H{"vendor_id": vendor.ID.String(), "amount": "100", "payment_date": "03-05-2026", "payment_method": "CASH"}},
		{"missing method", gin.H{"vendor_id": vendor.ID.String(), "amount": "100", "payment_date": "2026-05-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			f.engine.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/ledger/payments", bytes.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLedgerHandler_RecordPayment_UnknownVendor(t *testing.T) {
	f := setupLedgerHandler(t)

	body, _ := json.Marshal(gin.H{
		"vendor_id":      uuid.NewString(),
		"amount":         "100",
		"payment_date":   "2026-05-03",
		"payment_method": "CASH",
	})
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/ledger/payments", bytes.NewReader(body)))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLedgerHandler_GetDailyOverview(t *testing.T) {
	f := setupLedgerHandler(t)
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	vendorA := newTestVendor(t, "Vendor A", "0")
	vendorB := newTestVendor(t, "Vendor B", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendorA))
	require.NoError(t, f.vendorRepo.Save(nil, vendorB))

	require.NoError(t, f.summaryRepo.Create(nil, settlement.NewDailySummary(vendorA.ID, date,
		decimal.RequireFromString("100"), decimal.RequireFromString("100"), decimal.RequireFromString("3000"))))
	require.NoError(t, f.summaryRepo.Create(nil, settlement.NewDailySummary(vendorB.ID, date,
		decimal.RequireFromString("50"), decimal.RequireFromString("100"), decimal.Zero)))
	require.NoError(t, f.paymentRepo.Create(nil,
		settlement.NewVendorPayment(vendorA.ID, date, decimal.RequireFromString("1000"), "CASH", "")))

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/daily-overview?date=2026-05-04", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var overview settlementapp.DailyOverviewView
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &overview))

	assert.Len(t, overview.Summaries, 2)
	assert.Len(t, overview.Payments, 1)
	assert.Equal(t, "15000", overview.TotalCalculatedAmount.String())
	// Summary-captured payments and standalone payments are both counted
	assert.Equal(t, "4000", overview.TotalPaidAmount.String())
	assert.Equal(t, "12000", overview.TotalDueAmount.String())
}

func TestLedgerHandler_GetDailyOverview_MissingDate(t *testing.T) {
	f := setupLedgerHandler(t)

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/daily-overview", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLedgerHandler_ListVendorFinancials(t *testing.T) {
	f := setupLedgerHandler(t)
	date := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	vendor := newTestVendor(t, "Anuradhapura Poultry", "0")
	quiet := newTestVendor(t, "Quiet Vendor", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendor))
	require.NoError(t, f.vendorRepo.Save(nil, quiet))

	require.NoError(t, f.summaryRepo.Create(nil, settlement.NewDailySummary(vendor.ID, date,
		decimal.RequireFromString("150"), decimal.RequireFromString("1.2"), decimal.Zero)))
	require.NoError(t, f.paymentRepo.Create(nil,
		settlement.NewVendorPayment(vendor.ID, date, decimal.RequireFromString("50"), "CASH", "")))

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ledger/vendors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var summaries []settlementapp.VendorFinancialSummaryView
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &summaries))
	require.Len(t, summaries, 2)

	// FindAll orders by name
	assert.Equal(t, "Anuradhapura Poultry", summaries[0].VendorName)
	assert.Equal(t, "180", summaries[0].TotalBilled.String())
	assert.Equal(t, "50", summaries[0].TotalPaid.String())
	assert.Equal(t, "130", summaries[0].OutstandingBalance.String())

	assert.Equal(t, "Quiet Vendor", summaries[1].VendorName)
	assert.True(t, summaries[1].TotalBilled.IsZero())
	assert.True(t, summaries[1].OutstandingBalance.IsZero())
}

func TestLedgerHandler_GetOutstandingBalance(t *testing.T) {
	f := setupLedgerHandler(t)
	date := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	vendor := newTestVendor(t, "Anuradhapura Poultry", "0")
	require.NoError(t, f.vendorRepo.Save(nil, vendor))
	require.NoError(t, f.summaryRepo.Create(nil, settlement.NewDailySummary(vendor.ID, date,
		decimal.RequireFromString("100"), decimal.RequireFromString("2"), decimal.Zero)))

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(
		"GET", "/api/v1/ledger/vendors/"+vendor.ID.String()+"/balance", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var balance OutstandingBalanceResponse
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &balance))
	assert.Equal(t, "200", balance.OutstandingBalance.String())

	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(
		"GET", "/api/v1/ledger/vendors/"+uuid.NewString()+"/balance", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
