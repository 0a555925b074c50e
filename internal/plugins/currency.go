package plugins

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
	"biu-actions/internal/logger"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// DefaultCurrencyBaseURL 是 Frankfurter 汇率接口。
const DefaultCurrencyBaseURL = "https://api.frankfurter.app"

var (
	amountPattern    = regexp.MustCompile(`\d+\.?\d*`)
	commonCurrencies = []string{
		"AUD", "BGN", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP", "HKD",
		"HUF", "IDR", "ILS", "INR", "ISK", "JPY", "KRW", "MXN", "MYR", "NOK", "NZD",
		"PHP", "PLN", "RON", "SEK", "SGD", "THB", "TRY", "USD", "ZAR",
	}
	currencySymbols = []struct {
		symbol string
		code   string
	}{
		{"$", "USD"},
		{"¥", "CNY"},
		{"￥", "CNY"},
		{"€", "EUR"},
		{"£", "GBP"},
	}
)

// Currency 把选中金额换算为目标币种。含数字的选区视为上下文匹配。
type Currency struct {
	Client  *http.Client
	BaseURL string
}

func (c *Currency) Name() string     { return "currency" }
func (c *Currency) Title() string    { return "Currency Converter" }
func (c *Currency) Category() string { return action.CategoryOnline }

func (c *Currency) Available(sel action.Selection) action.Availability {
	if strings.TrimSpace(sel.Text) == "" {
		return action.Availability{}
	}
	return action.Availability{Available: true, ContextMatch: strings.ContainsAny(sel.Text, "0123456789")}
}

func (c *Currency) Perform(ctx context.Context, sel action.Selection, h action.Host) error {
	amount, code, ok := ParseAmount(strings.TrimSpace(sel.Text))
	if !ok {
		notify(h, i18n.MsgFailed, msg(h, i18n.MsgCurrencyNoNumber))
		return nil
	}
	from := code
	if from == "" {
		from = strings.ToUpper(action.StringSetting(h, c.Name(), "fromCurrency", "USD"))
	}
	to := strings.ToUpper(action.StringSetting(h, c.Name(), "targetCurrency", "CNY"))

	converted, found, err := c.convert(ctx, amount, from, to)
	if err != nil {
		return err
	}
	if !found {
		notify(h, i18n.MsgFailed, msg(h, i18n.MsgCurrencyPair))
		return nil
	}

	result := humanize.FormatFloat("#,###.##", converted)
	if action.BoolSetting(h, c.Name(), "includeCurrencySymbol", false) {
		result += " " + to
	}
	if err := h.PasteText(result); err != nil {
		return err
	}
	var subtitle string
	if action.BoolSetting(h, c.Name(), "showExchangeRate", false) && amount != 0 {
		subtitle = msg(h, i18n.MsgCurrencyRate, from, humanize.FormatFloat("#,###.####", converted/amount), to)
	}
	h.Notify(result, subtitle)
	return nil
}

func (c *Currency) convert(ctx context.Context, amount float64, from, to string) (float64, bool, error) {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultCurrencyBaseURL
	}
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set("from", from)
	q.Set("to", to)
	endpoint := base + "/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, false, err
	}
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	logger.Named("action").WithField("action", c.Name()).Debugf("GET %s", endpoint)
	resp, err := client.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, false, fmt.Errorf("read rates: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("http_%d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if !gjson.ValidBytes(body) {
		return 0, false, fmt.Errorf("parse rates: invalid json")
	}
	rate := gjson.GetBytes(body, "rates."+to)
	if !rate.Exists() || rate.Float() == 0 {
		return 0, false, nil
	}
	return rate.Float(), true, nil
}

// ParseAmount 从文本中取第一个数字（忽略千分位逗号），并识别币种代码或符号。
func ParseAmount(text string) (amount float64, code string, ok bool) {
	m := amountPattern.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return 0, "", false
	}
	amount, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
	if err != nil {
		return 0, "", false
	}
	upper := strings.ToUpper(text)
	for _, c := range commonCurrencies {
		if strings.Contains(upper, c) {
			return amount, c, true
		}
	}
	for _, s := range currencySymbols {
		if strings.Contains(text, s.symbol) {
			return amount, s.code, true
		}
	}
	return amount, "", true
}
