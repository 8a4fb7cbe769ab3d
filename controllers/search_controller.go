package controllers

import (
	"log"

	"myhotel/dto"
	"myhotel/response"
	"myhotel/services"

	"github.com/gin-gonic/gin"
)

// SearchRooms tìm phòng gần đúng qua Elasticsearch
func SearchRooms(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	rooms, err := services.SearchRooms(services.NormalizeInput(query))
	if err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(&rooms[i]))
	}

	response.Success(c, roomResponses)
}

// ReindexRooms xóa index cũ và index lại toàn bộ phòng vào Elasticsearch. Chỉ admin.
func ReindexRooms(c *gin.Context) {
	if err := services.DeleteIndex("rooms"); err != nil {
		// Index chưa tồn tại thì bỏ qua
		log.Printf("Không xóa được index rooms: %v", err)
	}

	if err := services.IndexRoomsToES(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Index lại dữ liệu thành công"})
}
