package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoClient fetches spot market sentiment from the CoinGecko
// public API. It complements the bar fetcher with price, 24h change and
// market cap for a coin.
type CoinGeckoClient struct {
	BaseURL string
	Client  *http.Client
}

// NewCoinGeckoClient creates a client with optional proxy support.
func NewCoinGeckoClient(proxyURL string) *CoinGeckoClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoClient{
		BaseURL: coinGeckoBaseURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// CoinID maps a ticker-like symbol ("BTC-USD") to a CoinGecko coin id
// ("bitcoin"). Unknown symbols pass through lowercased without the
// currency suffix.
func CoinID(symbol string) string {
	ids := map[string]string{
		"BTC": "bitcoin",
		"ETH": "ethereum",
		"BNB": "binancecoin",
		"XRP": "ripple",
		"SOL": "solana",
	}
	base := strings.ToUpper(strings.SplitN(symbol, "-", 2)[0])
	if id, ok := ids[base]; ok {
		return id
	}
	return strings.ToLower(base)
}

// FetchSnapshot returns the current market snapshot for a coin.
func (c *CoinGeckoClient) FetchSnapshot(symbol string) (*model.MarketSnapshot, error) {
	coin := CoinID(symbol)
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true&include_market_cap=true",
		c.BaseURL, url.QueryEscape(coin))

	resp, err := c.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload map[string]map[string]float64
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	data, ok := payload[coin]
	if !ok {
		return nil, fmt.Errorf("coingecko: no data for coin %q", coin)
	}
	return &model.MarketSnapshot{
		Coin:      coin,
		PriceUSD:  data["usd"],
		Change24h: data["usd_24h_change"],
		MarketCap: data["usd_market_cap"],
	}, nil
}
