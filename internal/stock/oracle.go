package stock

import (
	"context"
	"fmt"

	"github.com/nikolayk812/cartstate-demo/internal/port"
)

// Oracle answers availability questions with a fresh stock read on every call.
type Oracle struct {
	reader port.StockReader
}

func NewOracle(reader port.StockReader) port.StockOracle {
	return &Oracle{reader: reader}
}

func (o *Oracle) CheckAvailability(ctx context.Context, productID, requestedAmount int) (bool, error) {
	stock, err := o.reader.GetStock(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("reader.GetStock: %w", err)
	}

	return stock.Amount >= requestedAmount, nil
}
