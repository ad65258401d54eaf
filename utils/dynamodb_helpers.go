package utils

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NowISO returns the current UTC time in RFC3339. Stored timestamps use
// this format so lexicographic ordering matches chronological ordering.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// StringKey builds a single-attribute string key map.
func StringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// ChunkStrings splits values into chunks of at most size elements. Used to
// keep ID-membership lookups under the store's batch ceiling.
func ChunkStrings(values []string, size int) [][]string {
	if size <= 0 || len(values) == 0 {
		return nil
	}
	var chunks [][]string
	for i := 0; i < len(values); i += size {
		end := i + size
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[i:end])
	}
	return chunks
}
