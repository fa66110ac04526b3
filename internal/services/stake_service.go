package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type stake struct {
	Voter  string `json:"voter"`
	Amount uint64 `json:"amount"`
}

type stakeService struct {
	client  *http.Client
	baseURL string
}

type StakeService interface {
	GetStake(ctx context.Context, voter string) (uint64, error)
}

func NewStakeService(baseURL string, timeout time.Duration) StakeService {
	return &stakeService{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (s *stakeService) GetStake(ctx context.Context, voter string) (uint64, error) {
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/stake/%s", s.baseURL, url.PathEscape(voter)),
		nil,
	)
	if err != nil {
		return 0, err
	}

	request.Header.Add("Accept", "application/json")

	response, err := s.client.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return 0, nil
	default:
		return 0, fmt.Errorf("stake api responded with %d: %s", response.StatusCode, string(responseBody))
	}

	responseData := new(stake)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return 0, err
	}

	return responseData.Amount, nil
}
