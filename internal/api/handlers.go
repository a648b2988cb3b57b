package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"ladrillo/server/config"
	"ladrillo/server/internal/currency"
	"ladrillo/server/internal/database"
	"ladrillo/server/internal/finance"
	"ladrillo/server/internal/market"
	"ladrillo/server/internal/models"
)

// Handler wires the HTTP surface to the rate service and the analysis
// engines. All formulas live below this layer.
type Handler struct {
	rates  *currency.Service
	market *market.Intelligence
	db     *database.DB
	logger *logrus.Logger
}

func NewHandler(rates *currency.Service, intel *market.Intelligence, db *database.DB, logger *logrus.Logger) *Handler {
	return &Handler{
		rates:  rates,
		market: intel,
		db:     db,
		logger: logger,
	}
}

// AnalyzeRequest carries a property plus optional term overrides. Omitted
// terms fall back to the documented market defaults.
type AnalyzeRequest struct {
	Property  models.Property        `json:"property"`
	Mortgage  *models.MortgageTerms  `json:"mortgage"`
	Operating *models.OperatingTerms `json:"operating"`
}

func (r *AnalyzeRequest) mortgage() models.MortgageTerms {
	if r.Mortgage != nil {
		return *r.Mortgage
	}
	return finance.DefaultMortgageTerms()
}

func (r *AnalyzeRequest) operating() models.OperatingTerms {
	if r.Operating != nil {
		return *r.Operating
	}
	return finance.DefaultOperatingTerms()
}

// GetRates returns the current exchange-rate snapshot.
func (h *Handler) GetRates(c *gin.Context) {
	snap, err := h.rates.CurrentRates()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get rates")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "exchange rates unavailable"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetRateHistory returns recent persisted snapshots, newest first.
func (h *Handler) GetRateHistory(c *gin.Context) {
	history, err := h.db.SnapshotHistory(30)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load rate history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rate history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": history, "count": len(history)})
}

// GetHistoricalUF returns the UF value for a past date (YYYY-MM-DD).
func (h *Handler) GetHistoricalUF(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	value, err := h.rates.HistoricalUF(date)
	if err != nil {
		h.logger.WithError(err).Warn("Historical UF lookup failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "historical UF unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   date.Format("2006-01-02"),
		"uf_clp": value,
	})
}

// Analyze runs the full financial analysis for one property.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snap, err := h.rates.CurrentRates()
	if err != nil {
		h.rateError(c, err)
		return
	}

	metrics, err := finance.NewCalculator(snap).AnalyzeInvestment(req.Property, req.mortgage(), req.operating())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// AmortizationRequest sizes the loan from the price and down payment.
type AmortizationRequest struct {
	PriceUF  float64               `json:"price_uf"`
	Mortgage *models.MortgageTerms `json:"mortgage"`
}

// Amortization returns the month-by-month loan schedule.
func (h *Handler) Amortization(c *gin.Context) {
	var req AmortizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.PriceUF <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_uf must be positive"})
		return
	}

	mortgage := finance.DefaultMortgageTerms()
	if req.Mortgage != nil {
		mortgage = *req.Mortgage
	}
	if err := mortgage.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	capex := finance.InitialInvestment(req.PriceUF, mortgage.DownPaymentRate)
	loanUF := req.PriceUF - capex.DownPaymentUF
	payment := finance.MonthlyDividend(loanUF, mortgage.AnnualRatePercent, mortgage.TermYears, req.PriceUF)
	schedule := finance.AmortizationSchedule(loanUF, mortgage.AnnualRatePercent, mortgage.TermYears)

	c.JSON(http.StatusOK, gin.H{
		"loan_uf":  loanUF,
		"payment":  payment,
		"schedule": schedule,
	})
}

// ProjectionRequest drives the value and equity projection.
type ProjectionRequest struct {
	PriceUF          float64               `json:"price_uf"`
	Years            int                   `json:"years"`
	AppreciationRate *float64              `json:"appreciation_rate"`
	Mortgage         *models.MortgageTerms `json:"mortgage"`
}

// Projection returns projected property values and equity over N years.
func (h *Handler) Projection(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.PriceUF <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_uf must be positive"})
		return
	}
	if req.Years <= 0 {
		req.Years = 10
	}
	if req.Years > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "years must be at most 50"})
		return
	}

	appreciation := finance.DefaultAppreciationRate
	if req.AppreciationRate != nil {
		appreciation = *req.AppreciationRate
	}
	if appreciation < -1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appreciation_rate must be at least -1"})
		return
	}

	mortgage := finance.DefaultMortgageTerms()
	if req.Mortgage != nil {
		mortgage = *req.Mortgage
	}
	if err := mortgage.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	capex := finance.InitialInvestment(req.PriceUF, mortgage.DownPaymentRate)
	loanUF := req.PriceUF - capex.DownPaymentUF
	schedule := finance.AmortizationSchedule(loanUF, mortgage.AnnualRatePercent, mortgage.TermYears)
	values := finance.ProjectPropertyValue(req.PriceUF, req.Years, appreciation)

	c.JSON(http.StatusOK, gin.H{
		"values_uf": values,
		"equity":    finance.ProjectEquity(values, schedule),
	})
}

// MarketReport generates the market intelligence report for one property.
func (h *Handler) MarketReport(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if property.PriceUF <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_uf must be positive"})
		return
	}
	if property.Commune == "" && (property.Latitude == nil || property.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "commune or coordinates required"})
		return
	}

	c.JSON(http.StatusOK, h.market.GenerateReport(property))
}

// CombinedReport runs the financial and market analyses concurrently and
// returns both halves.
func (h *Handler) CombinedReport(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snap, err := h.rates.CurrentRates()
	if err != nil {
		h.rateError(c, err)
		return
	}

	var (
		metrics models.InvestmentMetrics
		report  models.MarketReport
	)
	g, _ := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var aErr error
		metrics, aErr = finance.NewCalculator(snap).AnalyzeInvestment(req.Property, req.mortgage(), req.operating())
		return aErr
	})
	g.Go(func() error {
		report = h.market.GenerateReport(req.Property)
		return nil
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"financial": metrics,
		"market":    report,
	})
}

// GetCommunes lists the supported communes with their centers and
// reference prices. Drives the entry-form dropdowns.
func (h *Handler) GetCommunes(c *gin.Context) {
	type communeInfo struct {
		Name               string    `json:"name"`
		Center             []float64 `json:"center"`
		ReferencePriceUFM2 float64   `json:"reference_price_uf_m2"`
	}

	communes := make([]communeInfo, 0, len(config.SupportedCommunes))
	for _, commune := range config.SupportedCommunes {
		communes = append(communes, communeInfo{
			Name:               commune.Name,
			Center:             commune.Center,
			ReferencePriceUFM2: market.ReferencePricePerM2(commune.Name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"communes": communes, "count": len(communes)})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) rateError(c *gin.Context, err error) {
	if errors.Is(err, currency.ErrRatesUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "exchange rates unavailable"})
		return
	}
	h.logger.WithError(err).Error("Rate lookup failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
