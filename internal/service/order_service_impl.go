package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/shopspring/decimal"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	itemRepo    repository.OrderItemRepository
	memberRepo  repository.MemberRepository
	productRepo repository.ProductRepository
	ledger      *Ledger
	transactor  repository.Transactor
}

// NewOrderService создает новый экземпляр OrderService
func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	memberRepo repository.MemberRepository,
	productRepo repository.ProductRepository,
	ledger *Ledger,
	transactor repository.Transactor,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		memberRepo:  memberRepo,
		productRepo: productRepo,
		ledger:      ledger,
		transactor:  transactor,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, memberID int64, lines []domain.NewOrderLine) (*domain.Order, error) {
	if err := domain.ValidateOrderLines(lines); err != nil {
		return nil, err
	}

	var orderID int64
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
			return err
		}

		ids := make([]int64, len(lines))
		for i, line := range lines {
			ids[i] = line.ProductID
		}
		prices, err := s.lockPrices(ctx, ids)
		if err != nil {
			return err
		}

		order := &domain.Order{MemberID: memberID}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		orderID = order.ID

		for _, line := range lines {
			if err := s.addLine(ctx, order.ID, memberID, line, prices[line.ProductID]); err != nil {
				return err
			}
		}

		_, err = s.orderRepo.RecalculateTotal(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

// AddItem добавляет строку в существующий заказ по текущей цене товара
func (s *orderService) AddItem(ctx context.Context, orderID int64, line domain.NewOrderLine) (*domain.Order, error) {
	if err := domain.ValidateQuantity(line.Quantity); err != nil {
		return nil, err
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		memberID, err := s.orderRepo.GetMemberID(ctx, orderID)
		if err != nil {
			return err
		}

		prices, err := s.lockPrices(ctx, []int64{line.ProductID})
		if err != nil {
			return err
		}

		if err := s.addLine(ctx, orderID, memberID, line, prices[line.ProductID]); err != nil {
			return err
		}

		_, err = s.orderRepo.RecalculateTotal(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, orderID)
}

// UpdateItemQuantity списывает или возвращает только разницу в количестве по цене строки
func (s *orderService) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.Order, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	var orderID int64
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		orderID = item.OrderID

		memberID, err := s.orderRepo.GetMemberID(ctx, item.OrderID)
		if err != nil {
			return err
		}

		if err := s.itemRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
			return err
		}

		err = s.ledger.Apply(ctx, domain.OrderItemEvent{
			Kind:             domain.OrderItemUpdated,
			MemberID:         memberID,
			UnitPrice:        item.UnitPrice,
			Quantity:         quantity,
			PreviousQuantity: item.Quantity,
		})
		if err != nil {
			return err
		}

		_, err = s.orderRepo.RecalculateTotal(ctx, item.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) DeleteItem(ctx context.Context, itemID int64) (*domain.Order, error) {
	var orderID int64
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		orderID = item.OrderID

		memberID, err := s.orderRepo.GetMemberID(ctx, item.OrderID)
		if err != nil {
			return err
		}

		if err := s.itemRepo.Delete(ctx, itemID); err != nil {
			return err
		}

		err = s.ledger.Apply(ctx, domain.OrderItemEvent{
			Kind:      domain.OrderItemDeleted,
			MemberID:  memberID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		if err != nil {
			return err
		}

		_, err = s.orderRepo.RecalculateTotal(ctx, item.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		memberID, err := s.orderRepo.GetMemberID(ctx, id)
		if err != nil {
			return err
		}

		items, err := s.itemRepo.ListByOrderID(ctx, id)
		if err != nil {
			return err
		}

		for _, item := range items {
			err := s.ledger.Apply(ctx, domain.OrderItemEvent{
				Kind:      domain.OrderItemDeleted,
				MemberID:  memberID,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
			if err != nil {
				return err
			}
		}

		return s.orderRepo.Delete(ctx, id)
	})
}

// lockPrices возвращает снимок цен; отсутствующий товар - NOT_FOUND
func (s *orderService) lockPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	prices, err := s.productRepo.LockPrices(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return nil, domain.NewNotFoundError(fmt.Sprintf("product with id %d", id))
		}
	}
	return prices, nil
}

func (s *orderService) addLine(ctx context.Context, orderID, memberID int64, line domain.NewOrderLine, unitPrice decimal.Decimal) error {
	item := &domain.OrderItem{
		OrderID:   orderID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		UnitPrice: unitPrice,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return err
	}

	return s.ledger.Apply(ctx, domain.OrderItemEvent{
		Kind:      domain.OrderItemCreated,
		MemberID:  memberID,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
	})
}
