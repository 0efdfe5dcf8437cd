package handler

import (
	"github.com/bagdasarian/club-shop/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	teamService      service.TeamService
	memberService    service.MemberService
	categoryService  service.CategoryService
	productService   service.ProductService
	orderService     service.OrderService
	paymentService   service.PaymentService
	analyticsService service.AnalyticsService
	validate         *validator.Validate
	log              logrus.FieldLogger
}

func NewHandler(
	teamService service.TeamService,
	memberService service.MemberService,
	categoryService service.CategoryService,
	productService service.ProductService,
	orderService service.OrderService,
	paymentService service.PaymentService,
	analyticsService service.AnalyticsService,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		teamService:      teamService,
		memberService:    memberService,
		categoryService:  categoryService,
		productService:   productService,
		orderService:     orderService,
		paymentService:   paymentService,
		analyticsService: analyticsService,
		validate:         newValidator(),
		log:              log,
	}
}
