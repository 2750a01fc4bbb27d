package metaprotocol

import (
	"errors"
	"strings"
)

const (
	MetaprotocolMarketplace = "marketplace"
	MetaprotocolCft20       = "cft20"
	MetaprotocolInscription = "inscription"

	VersionMarketplace = "v1"
	VersionCft20       = "v1"
	VersionInscription = "v2"
)

const (
	OpListCft20       = "list.cft20"
	OpListInscription = "list.inscription"
	OpDeposit         = "deposit"
	OpBuyCft20        = "buy.cft20"
	OpBuyInscription  = "buy.inscription"
	OpDelist          = "delist"
	OpInscribe        = "inscribe"
)

const (
	ParamHash       = "h"
	ParamTicker     = "tic"
	ParamAmount     = "amt"
	ParamPpt        = "ppt"
	ParamMinDeposit = "mindep"
	ParamTimeout    = "to"
	ParamMime       = "mime"
	ParamName       = "nam"

	// ValueSep joins multiple values of one parameter, ex: aggregated listing hashes
	ValueSep = "|"
)

const (
	prefix       = "urn:"
	sepParams    = "$"
	sepQuery     = "?"
	sepPair      = ","
	sepQueryPair = "&"
	sepKV        = "="
	sepOp        = ";"
	sepVersion   = "@"
	sepHeader    = ":"
	reservedSet  = ",=$;&?@:"
)

var (
	ErrInvalidUrn     = errors.New("invalid urn")
	ErrReservedChar   = errors.New("urn component contains a reserved character")
	ErrEmptyComponent = errors.New("urn component is empty")
)

type Param struct {
	Key   string
	Value string
}

// Urn is the memo a metaprotocol tx carries:
//
//	urn:{metaprotocol}:{chainId}@{version};{operation}${k=v,...}
//	urn:{metaprotocol}:{chainId}@{version};{operation}?k=v&...
type Urn struct {
	Metaprotocol string
	ChainId      string
	Version      string
	Operation    string
	Params       []Param
	// Query selects the ?k=v&... form
	Query bool
}

func New(metaprotocol, chainId, version, operation string) *Urn {
	return &Urn{
		Metaprotocol: metaprotocol,
		ChainId:      chainId,
		Version:      version,
		Operation:    operation,
	}
}

func (u *Urn) With(key, value string) *Urn {
	u.Params = append(u.Params, Param{Key: key, Value: value})
	return u
}

func (u *Urn) WithValues(key string, values ...string) *Urn {
	return u.With(key, strings.Join(values, ValueSep))
}

func (u *Urn) AsQuery() *Urn {
	u.Query = true
	return u
}

func (u *Urn) Get(key string) (string, bool) {
	for _, p := range u.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Values splits a multi value parameter
func (u *Urn) Values(key string) []string {
	v, ok := u.Get(key)
	if !ok || v == "" {
		return nil
	}
	return strings.Split(v, ValueSep)
}

func checkComponent(s string, allowEmpty bool) error {
	if s == "" && !allowEmpty {
		return ErrEmptyComponent
	}
	if strings.ContainsAny(s, reservedSet) {
		return ErrReservedChar
	}
	return nil
}

// Encode renders the urn, rejecting components the grammar cannot carry
func (u *Urn) Encode() (string, error) {
	for _, s := range []string{u.Metaprotocol, u.ChainId, u.Version, u.Operation} {
		if err := checkComponent(s, false); err != nil {
			return "", err
		}
	}

	b := strings.Builder{}
	b.WriteString(prefix)
	b.WriteString(u.Metaprotocol)
	b.WriteString(sepHeader)
	b.WriteString(u.ChainId)
	b.WriteString(sepVersion)
	b.WriteString(u.Version)
	b.WriteString(sepOp)
	b.WriteString(u.Operation)

	if len(u.Params) == 0 {
		return b.String(), nil
	}

	sep, pairSep := sepParams, sepPair
	if u.Query {
		sep, pairSep = sepQuery, sepQueryPair
	}
	b.WriteString(sep)
	for i, p := range u.Params {
		if err := checkComponent(p.Key, false); err != nil {
			return "", err
		}
		if err := checkComponent(p.Value, true); err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(pairSep)
		}
		b.WriteString(p.Key)
		b.WriteString(sepKV)
		b.WriteString(p.Value)
	}
	return b.String(), nil
}

// Parse reads a urn in either parameter form
func Parse(s string) (*Urn, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, ErrInvalidUrn
	}
	rest := s[len(prefix):]

	opIdx := strings.Index(rest, sepOp)
	if opIdx < 0 {
		return nil, ErrInvalidUrn
	}
	header, body := rest[:opIdx], rest[opIdx+1:]

	mpIdx := strings.Index(header, sepHeader)
	if mpIdx < 0 {
		return nil, ErrInvalidUrn
	}
	verIdx := strings.LastIndex(header, sepVersion)
	if verIdx < mpIdx {
		return nil, ErrInvalidUrn
	}

	u := &Urn{
		Metaprotocol: header[:mpIdx],
		ChainId:      header[mpIdx+1 : verIdx],
		Version:      header[verIdx+1:],
	}
	if u.Metaprotocol == "" || u.ChainId == "" || u.Version == "" {
		return nil, ErrInvalidUrn
	}

	pairSep := sepPair
	paramIdx := strings.IndexAny(body, sepParams+sepQuery)
	if paramIdx < 0 {
		u.Operation = body
	} else {
		u.Operation = body[:paramIdx]
		if body[paramIdx:paramIdx+1] == sepQuery {
			u.Query = true
			pairSep = sepQueryPair
		}
		params := body[paramIdx+1:]
		if params != "" {
			for _, pair := range strings.Split(params, pairSep) {
				kv := strings.SplitN(pair, sepKV, 2)
				if len(kv) != 2 || kv[0] == "" {
					return nil, ErrInvalidUrn
				}
				u.Params = append(u.Params, Param{Key: kv[0], Value: kv[1]})
			}
		}
	}
	if u.Operation == "" {
		return nil, ErrInvalidUrn
	}
	return u, nil
}
