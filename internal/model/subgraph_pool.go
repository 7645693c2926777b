package model

// SubgraphPool is a raw pool record as returned by the Balancer subgraph.
// Numeric fields are kept as decimal strings; typed pools parse them.
type SubgraphPool struct {
	ID          string             `json:"id"`
	Address     string             `json:"address"`
	PoolType    string             `json:"poolType"`
	SwapFee     string             `json:"swapFee"`
	TotalShares string             `json:"totalShares"`
	TotalWeight string             `json:"totalWeight,omitempty"`
	Amp         string             `json:"amp,omitempty"`
	Tokens      []SubgraphPoolToken `json:"tokens"`
	TokensList  []string           `json:"tokensList"`

	// Element pools only.
	ExpiryTime     int64  `json:"expiryTime,omitempty"`
	UnitSeconds    int64  `json:"unitSeconds,omitempty"`
	PrincipalToken string `json:"principalToken,omitempty"`
	BaseToken      string `json:"baseToken,omitempty"`

	// Linear pools only.
	MainIndex    int    `json:"mainIndex,omitempty"`
	WrappedIndex int    `json:"wrappedIndex,omitempty"`
	LowerTarget  string `json:"lowerTarget,omitempty"`
	UpperTarget  string `json:"upperTarget,omitempty"`
}

// SubgraphPoolToken is one constituent token of a raw pool record.
type SubgraphPoolToken struct {
	Address   string `json:"address"`
	Balance   string `json:"balance"`
	Decimals  int    `json:"decimals"`
	Weight    string `json:"weight,omitempty"`
	PriceRate string `json:"priceRate,omitempty"`
}
