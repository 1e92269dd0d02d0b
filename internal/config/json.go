package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields for file-based configuration, e.g.:
//
//	{
//	  "minrue":  {"base_url": "http://localhost:8000/v1", "request_timeout": "30s"},
//	  "ragflow": {"base_url": "https://rag.example.com/api/v1", "api_key": "ragflow-..."}
//	}
type StructuredJSONConfig struct {
	MinRUE struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		RetryBackoff   Duration `json:"retry_backoff"`
	} `json:"minrue,omitempty"`

	RAGFlow struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		RetryBackoff   Duration `json:"retry_backoff"`
		APIKey         string   `json:"api_key"`
	} `json:"ragflow,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		MinRUE: MinRUE{
			Endpoint: Endpoint{
				BaseURL:        jsonCfg.MinRUE.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.MinRUE.RequestTimeout),
				RetryCount:     jsonCfg.MinRUE.RetryCount,
				RetryBackoff:   time.Duration(jsonCfg.MinRUE.RetryBackoff),
			},
		},
		RAGFlow: RAGFlow{
			Endpoint: Endpoint{
				BaseURL:        jsonCfg.RAGFlow.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.RAGFlow.RequestTimeout),
				RetryCount:     jsonCfg.RAGFlow.RetryCount,
				RetryBackoff:   time.Duration(jsonCfg.RAGFlow.RetryBackoff),
			},
			APIKey: jsonCfg.RAGFlow.APIKey,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
