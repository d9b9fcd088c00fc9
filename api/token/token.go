// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token exposes read endpoints over the token contract.
package token

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/api/utils"
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/token"
)

type Token struct {
	token *token.Token
}

func New(tok *token.Token) *Token {
	return &Token{token: tok}
}

func (t *Token) handleGetSupply(w http.ResponseWriter, _ *http.Request) error {
	hardCap, err := t.token.HardCap()
	if err != nil {
		return err
	}
	effectiveCap, err := t.token.EffectiveCap()
	if err != nil {
		return err
	}
	minted, err := t.token.TotalMinted()
	if err != nil {
		return err
	}
	burned, err := t.token.TotalBurned()
	if err != nil {
		return err
	}
	supply, err := t.token.TotalSupply()
	if err != nil {
		return err
	}
	paused, err := t.token.IsPaused()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &SupplyResponse{
		Name:         aurum.TokenName,
		Symbol:       aurum.TokenSymbol,
		Decimals:     aurum.TokenDecimals,
		HardCap:      (*HexBig)(hardCap),
		EffectiveCap: (*HexBig)(effectiveCap),
		TotalMinted:  (*HexBig)(minted),
		TotalBurned:  (*HexBig)(burned),
		TotalSupply:  (*HexBig)(supply),
		Paused:       paused,
	})
}

func (t *Token) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	balance, err := t.token.BalanceOf(addr)
	if err != nil {
		return err
	}
	blacklisted, err := t.token.IsBlacklisted(addr)
	if err != nil {
		return err
	}
	nonce, err := t.token.Nonce(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &AccountResponse{
		Balance:     (*HexBig)(balance),
		Blacklisted: blacklisted,
		Nonce:       nonce,
	})
}

func (t *Token) handleGetAllowance(w http.ResponseWriter, req *http.Request) error {
	owner, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	spender, err := aurum.ParseAddress(mux.Vars(req)["spender"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "spender"))
	}
	allowance, err := t.token.Allowance(owner, spender)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &AllowanceResponse{
		Allowance: (*HexBig)(allowance),
		Unlimited: allowance.Cmp(aurum.MaxUint256) == 0,
	})
}

// Mount attaches the endpoints under the path prefix.
func (t *Token) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/supply").
		Methods(http.MethodGet).
		Name("GET /token/supply").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetSupply))
	sub.Path("/accounts/{address}").
		Methods(http.MethodGet).
		Name("GET /token/accounts/{address}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetAccount))
	sub.Path("/accounts/{address}/allowances/{spender}").
		Methods(http.MethodGet).
		Name("GET /token/accounts/{address}/allowances/{spender}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetAllowance))
}
