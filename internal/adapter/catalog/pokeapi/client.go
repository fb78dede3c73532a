package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type resourceList struct {
	Results []namedResource `json:"results"`
}

type berryDetail struct {
	Name       string        `json:"name"`
	Size       int           `json:"size"`
	GrowthTime int           `json:"growth_time"`
	Firmness   namedResource `json:"firmness"`
	Flavors    []struct {
		Potency int `json:"potency"`
	} `json:"flavors"`
	Item namedResource `json:"item"`
}

type itemDetail struct {
	Name    string `json:"name"`
	Sprites struct {
		Default string `json:"default"`
	} `json:"sprites"`
}

type pokemonDetail struct {
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

type speciesDetail struct {
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type chainLink struct {
	Species   namedResource `json:"species"`
	EvolvesTo []chainLink   `json:"evolves_to"`
}

type evolutionChainDetail struct {
	Chain chainLink `json:"chain"`
}

func (c Client) berryList(ctx context.Context, limit int) (resourceList, error) {
	var out resourceList
	err := c.getJSON(ctx, fmt.Sprintf("%s/berry?limit=%d", c.BaseURL, limit), &out)
	return out, err
}

func (c Client) pokemonList(ctx context.Context, limit int) (resourceList, error) {
	var out resourceList
	err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon?limit=%d", c.BaseURL, limit), &out)
	return out, err
}

func (c Client) berry(ctx context.Context, url string) (berryDetail, error) {
	var out berryDetail
	err := c.getJSON(ctx, url, &out)
	return out, err
}

func (c Client) item(ctx context.Context, url string) (itemDetail, error) {
	var out itemDetail
	err := c.getJSON(ctx, url, &out)
	return out, err
}

func (c Client) pokemon(ctx context.Context, name string) (pokemonDetail, error) {
	var out pokemonDetail
	err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon/%s", c.BaseURL, name), &out)
	return out, err
}

func (c Client) species(ctx context.Context, name string) (speciesDetail, error) {
	var out speciesDetail
	err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon-species/%s", c.BaseURL, name), &out)
	return out, err
}

func (c Client) evolutionChain(ctx context.Context, url string) (evolutionChainDetail, error) {
	var out evolutionChainDetail
	err := c.getJSON(ctx, url, &out)
	return out, err
}

func (c Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("pokeapi: HTTP %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
