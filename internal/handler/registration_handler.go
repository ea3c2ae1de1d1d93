package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stjohns-golfday/golfday-api/internal/dto"
	"github.com/stjohns-golfday/golfday-api/internal/repository"
	"github.com/stjohns-golfday/golfday-api/internal/service"
)

type RegistrationHandler struct {
	regSvc      service.RegistrationService
	invoiceSvc  service.InvoiceService
	packageRepo repository.PackageRepository
}

func NewRegistrationHandler(regSvc service.RegistrationService, invoiceSvc service.InvoiceService, packageRepo repository.PackageRepository) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc, invoiceSvc: invoiceSvc, packageRepo: packageRepo}
}

func (h *RegistrationHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/packages", h.ListPackages)
	api.POST("/registrations", h.CreateRegistration)
	api.GET("/registrations/:id", h.GetRegistration)
	api.POST("/send-invoice", h.SendInvoice)
}

func (h *RegistrationHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.packageRepo.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch packages")
	}
	return c.JSON(http.StatusOK, pkgs)
}

func (h *RegistrationHandler) CreateRegistration(c echo.Context) error {
	var req dto.CreateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.TotalAmount.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "total_amount must not be negative")
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package_id")
	}

	in := service.CreateRegistrationInput{
		ContactFirstName: req.ContactFirstName,
		ContactLastName:  req.ContactLastName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		CompanyName:      req.CompanyName,
		CompanyAddress:   req.CompanyAddress,
		PackageID:        packageID,
		TotalAmount:      *req.TotalAmount,
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		in.UserID = &userID
	}
	for _, p := range req.Players {
		in.Players = append(in.Players, service.PlayerInput{
			PlayerName:          p.PlayerName,
			PlayerEmail:         p.PlayerEmail,
			TshirtSize:          p.TshirtSize,
			DietaryRequirements: p.DietaryRequirements,
			AttendingGalaDinner: p.AttendingGalaDinner,
		})
	}

	reg, players, err := h.regSvc.CreateRegistration(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create registration")
	}

	return c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg, players))
}

func (h *RegistrationHandler) GetRegistration(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration id")
	}

	reg, players, err := h.regSvc.GetRegistration(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg, players))
}

// SendInvoice emails the invoice for an existing registration. A
// dispatch failure maps to 502 rather than 404/500 so the client can
// tell "nothing to send" apart from "saved, but the email didn't go
// out" and fall back to the on-screen invoice.
func (h *RegistrationHandler) SendInvoice(c echo.Context) error {
	var req dto.SendInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := uuid.Parse(req.RegistrationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registrationId")
	}

	invoiceNumber, err := h.invoiceSvc.SendInvoice(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmailDispatch):
			return echo.NewHTTPError(http.StatusBadGateway, service.ErrEmailDispatch.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to send invoice")
		}
	}

	return c.JSON(http.StatusOK, dto.SendInvoiceResponse{
		Success:       true,
		Message:       "Invoice sent successfully",
		InvoiceNumber: invoiceNumber,
	})
}
