package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// addProduct prompts for every product field and stores the result.
// Malformed values are re-prompted until valid.
func (c *Console) addProduct(ctx context.Context) error {
	productType, err := c.promptText(ctx, "Please write the type of the product:")
	if err != nil {
		return err
	}
	brand, err := c.promptText(ctx, "Please write the brand of the product:")
	if err != nil {
		return err
	}
	productModel, err := c.promptText(ctx, "Please write the model of the product:")
	if err != nil {
		return err
	}
	office, err := c.promptOffice(ctx)
	if err != nil {
		return err
	}
	date, err := c.promptDate(ctx)
	if err != nil {
		return err
	}
	price, err := c.promptPrice(ctx)
	if err != nil {
		return err
	}

	product, err := c.svc.AddProduct(ctx, model.ProductInput{
		Type:         productType,
		Brand:        brand,
		Model:        productModel,
		Office:       office,
		PurchaseDate: date,
		Price:        price,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to add product")
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			c.println(fmt.Sprintf("Product was not added: %v", err))
		} else {
			c.println("Product was not added: storage is unavailable.")
		}
		return nil
	}

	c.println(fmt.Sprintf("Product %s %s added to the %s office.", product.Brand, product.Model, product.Office))
	return nil
}

func (c *Console) promptText(ctx context.Context, prompt string) (string, error) {
	c.println(prompt)
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		c.println("Value cannot be empty. Please try again:")
	}
}

func (c *Console) promptOffice(ctx context.Context) (model.OfficeLocation, error) {
	c.println("Please choose the office, where it is located.")
	c.println("(S)weden, (E)Spain or (U)USA?:")
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return model.OfficeUnknown, err
		}
		if office := model.ParseOfficeCode(line); office.Known() {
			return office, nil
		}
		c.println("Invalid office. Please choose (S)weden, (E)Spain or (U)USA:")
	}
}

func (c *Console) promptDate(ctx context.Context) (time.Time, error) {
	c.println("Please write the purchase date of the product (dd/MM/yyyy):")
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return time.Time{}, err
		}
		if date, err := model.ParseDate(line); err == nil {
			return date, nil
		}
		c.println("Invalid date format. Please try again (dd/MM/yyyy):")
	}
}

func (c *Console) promptPrice(ctx context.Context) (decimal.Decimal, error) {
	c.println("Please write the price of the product:")
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return decimal.Zero, err
		}
		price, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil && !price.IsNegative() {
			return price, nil
		}
		c.println("Invalid price format. Please try again:")
	}
}
