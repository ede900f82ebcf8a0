package types

import "encoding/json"

type ChatHistoryResponse struct {
	Success  bool              `json:"success"`
	Messages []json.RawMessage `json:"messages"`
}
