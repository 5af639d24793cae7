package transit

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// PaymentProvider is a mobile money operator. The USSD template contains an
// {amount} placeholder substituted with the final price at purchase time.
type PaymentProvider struct {
	Name         string `json:"name" groups:"basic,detail"`
	USSDTemplate string `json:"ussd_template" groups:"detail"`
}

var PaymentProviders = []PaymentProvider{
	{Name: "MTN Mobile Money", USSDTemplate: "*182*6*1*1*078xxxxxx*{amount}#"},
	{Name: "Airtel Money", USSDTemplate: "*182*1*1*078xxxxxx*{amount}#"},
	{Name: "Tigo Cash", USSDTemplate: "*188*1*1*078xxxxxx*{amount}#"},
}

func ProviderByName(name string) (PaymentProvider, bool) {
	i := slices.IndexFunc(PaymentProviders, func(provider PaymentProvider) bool {
		return provider.Name == name
	})
	if i == -1 {
		return PaymentProvider{}, false
	}
	return PaymentProviders[i], true
}

// USSDCode renders the dial code for paying the given amount through this
// provider.
func (p PaymentProvider) USSDCode(amount int) string {
	return strings.ReplaceAll(p.USSDTemplate, "{amount}", strconv.Itoa(amount))
}
