package console

import (
	"context"
	"fmt"

	"asset-tracker/internal/model"
)

const (
	rowFormat = "%-10s%-10s%-10s%-10s%-15s%-14s%-10s%-22s"
	errFormat = "%-10s%-10s%-10s%s"
)

// listProducts prints every product as a table, highlighting ageing equipment.
func (c *Console) listProducts(ctx context.Context) error {
	views, err := c.svc.ListProducts(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list products")
		c.println("Products could not be listed: storage is unavailable.")
		return nil
	}

	if len(views) == 0 {
		c.println("No products found.")
		return nil
	}

	c.println(fmt.Sprintf(rowFormat,
		"Type", "Brand", "Model", "Office", "Purchase Date", "Price in USD", "Currency", "Local Price Today"))
	c.println(fmt.Sprintf(rowFormat,
		"-----", "-----", "-----", "------", "-------------", "------------", "--------", "------------------"))

	for _, v := range views {
		c.println(c.renderRow(v))
	}

	return nil
}

func (c *Console) renderRow(v model.ProductView) string {
	if v.Err != nil {
		return fmt.Sprintf(errFormat, v.Type, v.Brand, v.Model, "error: "+v.Err.Error())
	}

	row := fmt.Sprintf(rowFormat,
		v.Type,
		v.Brand,
		v.Model,
		v.Country,
		v.PurchaseDate.Format(model.DateLayout),
		c.money(v.Price),
		v.Currency,
		c.money(v.LocalPrice),
	)

	switch v.Status {
	case model.StatusRed:
		return c.color.Red(row)
	case model.StatusYellow:
		return c.color.Yellow(row)
	default:
		return row
	}
}
