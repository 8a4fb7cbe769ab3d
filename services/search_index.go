package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"myhotel/config"
	"myhotel/models"

	"github.com/elastic/go-elasticsearch/v8"
)

var es *elasticsearch.Client

func ConnectElastic() {
	cfg := elasticsearch.Config{
		Addresses: []string{
			os.Getenv("ELASTIC_ADDR"),
		},
		Username: os.Getenv("ELASTIC_USER"),
		Password: os.Getenv("ELASTIC_PASSWORD"),
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}
	var err error
	es, err = elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("Không thể kết nối Elasticsearch:", err)
	}

	log.Println("Kết nối Elasticsearch thành công!")
}

func GetAllRoomsForIndexing() ([]map[string]interface{}, error) {
	var rooms []models.Room

	err := config.DB.Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	var formattedRooms []map[string]interface{}

	for _, room := range rooms {
		roomData := map[string]interface{}{
			"id":          room.ID,
			"name":        room.Name,
			"price":       room.Price,
			"capacity":    room.Capacity,
			"type":        room.Type,
			"description": room.Description,
			"isPopular":   room.IsPopular,
			"createdAt":   room.CreatedAt,
		}

		formattedRooms = append(formattedRooms, roomData)
	}

	return formattedRooms, nil
}

func IndexRoomsToES() error {
	rooms, err := GetAllRoomsForIndexing()
	if err != nil {
		return err
	}

	var buf strings.Builder
	for _, room := range rooms {
		id := fmt.Sprintf("%v", room["id"])

		// Ghi metadata Bulk
		meta := fmt.Sprintf(`{ "index" : { "_index" : "rooms", "_id" : "%s" } }`, id)
		buf.WriteString(meta + "\n")

		roomJSON, err := json.Marshal(room)
		if err != nil {
			log.Printf("Lỗi khi convert room thành JSON: %v\n", err)
			continue
		}
		buf.WriteString(string(roomJSON) + "\n")
	}

	return sendBulkRequest(buf.String())
}

// Gửi request bulk đến Elasticsearch
func sendBulkRequest(data string) error {
	res, err := es.Bulk(bytes.NewReader([]byte(data)), es.Bulk.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("lỗi khi gửi Bulk API: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var bulkRes map[string]interface{}
	if err := json.Unmarshal(body, &bulkRes); err != nil {
		return fmt.Errorf("lỗi khi parse phản hồi: %w", err)
	}

	if items, ok := bulkRes["items"].([]interface{}); ok {
		for _, item := range items {
			indexOp := item.(map[string]interface{})["index"].(map[string]interface{})
			if errorInfo, exists := indexOp["error"]; exists {
				log.Printf("Lỗi khi index document ID %v: %+v\n", indexOp["_id"], errorInfo)
			}
		}
	}

	if res.IsError() {
		return fmt.Errorf("elasticsearch trả về lỗi: %s", string(body))
	}

	log.Println("Dữ liệu đã được index thành công vào Elasticsearch!")
	return nil
}

// Xóa index trong Elasticsearch
func DeleteIndex(indexName string) error {
	res, err := es.Indices.Delete([]string{indexName}, es.Indices.Delete.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("lỗi khi xóa index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch trả về lỗi khi xóa index %s: %s", indexName, res.Status())
	}

	log.Printf("Index '%s' đã được xóa thành công!", indexName)
	return nil
}

// SearchRooms tìm phòng gần đúng theo tên và mô tả qua Elasticsearch
func SearchRooms(query string) ([]models.Room, error) {
	if es == nil {
		return nil, fmt.Errorf("ElasticSearch client chưa được khởi tạo")
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []map[string]interface{}{
					{"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"name^3", "description", "type"},
						"fuzziness": "AUTO",
					}},
					{"match_phrase_prefix": map[string]interface{}{
						"name": query,
					}},
				},
				"minimum_should_match": 1,
			},
		},
		"sort": []map[string]interface{}{
			{"_score": "desc"},
		},
	}

	queryBody, _ := json.Marshal(searchQuery)

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex("rooms"),
		es.Search.WithBody(bytes.NewReader(queryBody)),
		es.Search.WithPretty(),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var result struct {
		Hits struct {
			Hits []struct {
				Source models.Room `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}

	var rooms []models.Room
	for _, hit := range result.Hits.Hits {
		rooms = append(rooms, hit.Source)
	}

	return rooms, nil
}
