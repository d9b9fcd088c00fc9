// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking exposes read endpoints over the staking pool.
package staking

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/api/utils"
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/stakepool"
)

type Staking struct {
	pool *stakepool.Pool
	now  func() uint64
}

func New(pool *stakepool.Pool) *Staking {
	return &Staking{
		pool: pool,
		now:  func() uint64 { return uint64(time.Now().Unix()) },
	}
}

func (s *Staking) handleGetPool(w http.ResponseWriter, _ *http.Request) error {
	now := s.now()
	opened, err := s.pool.TimestampOpened()
	if err != nil {
		return err
	}
	open, err := s.pool.IsOpen(now)
	if err != nil {
		return err
	}
	totalStaked, err := s.pool.TotalStaked()
	if err != nil {
		return err
	}
	resp := &PoolResponse{
		TimestampOpened: opened,
		Open:            open,
		TotalStaked:     (*HexBig)(totalStaked),
	}
	if open {
		months, err := s.pool.MonthsOpen(now)
		if err != nil {
			return err
		}
		resp.MonthsOpen = &months
	}
	return utils.WriteJSON(w, resp)
}

func (s *Staking) handleGetStakes(w http.ResponseWriter, req *http.Request) error {
	addr, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	stakes, err := s.pool.StakesOf(addr)
	if err != nil {
		return err
	}
	total, err := s.pool.TotalStakedBy(addr)
	if err != nil {
		return err
	}
	resp := &StakesResponse{
		TotalStaked: (*HexBig)(total),
		Stakes:      make([]*StakeResponse, 0, len(stakes)),
	}
	now := s.now()
	for _, stake := range stakes {
		unlockAt := stake.StartTimestamp + uint64(stake.DurationMonths)*aurum.AvgSecondsPerMonth
		resp.Stakes = append(resp.Stakes, &StakeResponse{
			ID:             stake.ID,
			Amount:         (*HexBig)(stake.Amount),
			Rewards:        (*HexBig)(stake.Rewards),
			StartTimestamp: stake.StartTimestamp,
			DurationMonths: stake.DurationMonths,
			UnlocksAt:      unlockAt,
			Claimable:      now >= unlockAt,
		})
	}
	return utils.WriteJSON(w, resp)
}

// Mount attaches the endpoints under the path prefix.
func (s *Staking) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/pool").
		Methods(http.MethodGet).
		Name("GET /staking/pool").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetPool))
	sub.Path("/accounts/{address}/stakes").
		Methods(http.MethodGet).
		Name("GET /staking/accounts/{address}/stakes").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetStakes))
}
