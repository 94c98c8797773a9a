package cmd

import (
	"store/internal/adapters/out/postgres"
	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeExpiredDiscountsCommandHandler() commands.PurgeExpiredDiscountsCommandHandler {
	var f commands.DiscountUoWFactory = FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredDiscountsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveProductsQueryHandler() queries.GetActiveProductsQueryHandler {
	return queries.NewGetActiveProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDiscountUoWFactory func() commands.DiscountUoW

func (f FuncDiscountUoWFactory) Create() commands.DiscountUoW {
	return f()
}
