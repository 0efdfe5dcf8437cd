package handler

import (
	"encoding/json"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	if team == nil {
		return TeamResponse{}
	}
	return TeamResponse{
		ID:        team.ID,
		Number:    team.Number,
		StartDate: team.StartDate.Format(dateLayout),
		Name:      team.DisplayName(),
	}
}

func httpTeamToDomain(req TeamRequest) (*domain.Team, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date must be a date in format %s", dateLayout)
	}
	return &domain.Team{Number: req.Number, StartDate: startDate}, nil
}

func domainMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:      member.ID,
		Name:    member.Name,
		Email:   member.Email,
		Team:    domainTeamToHTTP(member.Team),
		Balance: money(member.Balance),
	}
}

func domainCategoryToHTTP(category *domain.Category) CategoryResponse {
	if category == nil {
		return CategoryResponse{}
	}
	return CategoryResponse{
		ID:      category.ID,
		Name:    category.Name,
		Icon:    category.Icon,
		Visible: category.Visible,
	}
}

func httpCategoryToDomain(req CategoryRequest) *domain.Category {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	return &domain.Category{Name: req.Name, Icon: req.Icon, Visible: visible}
}

func domainProductToHTTP(product *domain.Product) ProductResponse {
	category := domainCategoryToHTTP(product.Category)
	if product.Category == nil {
		category.ID = product.CategoryID
	}
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Image:       product.Image,
		Description: product.Description,
		Category:    category,
		Visible:     product.Visible,
		CostExTax:   money(product.CostExTax),
		PackSize:    product.PackSize,
		TaxRate:     int(product.TaxRate),
		Price:       money(product.Price),
	}
}

func domainOrderToHTTP(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		product := ProductResponse{ID: item.ProductID}
		if item.Product != nil {
			product = domainProductToHTTP(item.Product)
		}
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			Amount:    money(item.Amount()),
		})
	}

	return OrderResponse{
		ID:          order.ID,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
		By:          order.MemberID,
		Items:       items,
		TotalAmount: money(order.TotalAmount),
	}
}

func httpOrderLinesToDomain(items []OrderItemRequest) []domain.NewOrderLine {
	lines := make([]domain.NewOrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.NewOrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

func domainPaymentToHTTP(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           payment.ID,
		By:           payment.MemberID,
		Description:  payment.Description,
		Amount:       money(payment.Amount),
		ProofPicture: payment.ProofPicture,
		Completed:    payment.Completed,
		CreatedAt:    payment.CreatedAt.Format(time.RFC3339),
	}
}

func httpPaymentToDomain(req PaymentRequest) *domain.Payment {
	return &domain.Payment{
		MemberID:     req.By,
		Description:  req.Description,
		Amount:       req.Amount,
		ProofPicture: req.ProofPicture,
	}
}

func domainSeriesToHTTP(series *domain.Series) SeriesResponse {
	values := make([]json.Number, 0, len(series.Values))
	for _, v := range series.Values {
		values = append(values, json.Number(v.String()))
	}
	return SeriesResponse{Labels: series.Labels, Values: values}
}

func domainSummaryToHTTP(summary *domain.Summary) SummaryResponse {
	response := SummaryResponse{
		TotalSpent:      money(summary.TotalSpent),
		TotalOrders:     summary.TotalOrders,
		AvgOrderValue:   money(summary.AvgOrderValue),
		AvgOrdersPerDay: money(summary.AvgOrdersPerDay),
	}
	if summary.TotalBalance != nil {
		balance := money(*summary.TotalBalance)
		response.TotalBalance = &balance
	}
	return response
}
