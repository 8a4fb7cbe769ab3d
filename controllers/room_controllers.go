package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"myhotel/config"
	"myhotel/dto"
	"myhotel/models"
	"myhotel/response"
	"myhotel/services"
	"myhotel/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var roomsCacheKey = "rooms:all"

// parseRoomFilters đọc bộ lọc từ query string
func parseRoomFilters(c *gin.Context) *dto.RoomFilterRequest {
	filter := &dto.RoomFilterRequest{
		SortBy:    c.Query("sort_by"),
		Type:      c.Query("type"),
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	if name := c.Query("name"); name != "" {
		decoded, err := url.QueryUnescape(name)
		if err == nil {
			filter.Name = decoded
		} else {
			filter.Name = name
		}
	}

	if v := c.Query("price_min"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &parsed
		}
	}
	if v := c.Query("price_max"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &parsed
		}
	}
	if v := c.Query("capacity"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Capacity = &parsed
		}
	}
	if v := c.Query("is_popular"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			filter.IsPopular = &parsed
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	return filter
}

// loadAllRooms lấy toàn bộ danh sách phòng, ưu tiên cache Redis
func loadAllRooms() ([]models.Room, error) {
	var allRooms []models.Room

	rdb := config.RedisClient

	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, roomsCacheKey, &allRooms); err == nil && len(allRooms) > 0 {
			return allRooms, nil
		}
	}

	if err := config.DB.Find(&allRooms).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, roomsCacheKey, allRooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	return allRooms, nil
}

// invalidateRoomsCache xóa cache danh sách phòng sau khi ghi
func invalidateRoomsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Price:       room.Price,
		Capacity:    room.Capacity,
		Type:        room.Type,
		Description: room.Description,
		Preview:     room.Preview,
		IsPopular:   room.IsPopular,
		CreatedAt:   room.CreatedAt,
	}
}

// GetRooms trả về danh sách phòng theo bộ lọc đọc từ query string
func GetRooms(c *gin.Context) {
	respondRoomList(c, parseRoomFilters(c))
}

// FilterRoomsForm xử lý form lọc phòng gửi từ trang danh sách
func FilterRoomsForm(c *gin.Context) {
	var filter dto.RoomFilterRequest
	if err := c.ShouldBind(&filter); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	respondRoomList(c, &filter)
}

// respondRoomList trả về danh sách phòng theo bộ lọc.
// Sắp xếp được áp dụng trước, sau đó mới lọc theo từng tiêu chí.
func respondRoomList(c *gin.Context, filter *dto.RoomFilterRequest) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	// Gộp với bộ lọc đã lưu của session nếu người dùng tiếp tục tìm kiếm
	sessionId := c.GetString("sessionId")
	if sessionId != "" && config.RedisClient != nil {
		if c.Query("use_last") == "true" {
			if last, err := services.GetLastFilters(config.Ctx, config.RedisClient, sessionId); err == nil {
				filter = services.MergeFilters(last, filter)
			}
		}
		if err := services.SaveLastFilters(config.Ctx, config.RedisClient, sessionId, filter); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc vào Redis: %v", err)
		}
	}

	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	// Sắp xếp trước khi lọc
	services.SortRoomsBy(allRooms, filter.SortBy)

	var dateMessage string
	var booked map[uint]bool

	if filter.StartDate != "" && filter.EndDate != "" {
		start, end, err := validator.ValidateBookingDates(filter.StartDate, filter.EndDate)
		if err != nil {
			// Khoảng ngày sai thì bỏ qua lọc theo ngày, các tiêu chí khác vẫn áp dụng
			dateMessage = "Vui lòng chọn khoảng ngày hợp lệ"
		} else {
			booked, err = services.BookedRoomIDs(config.DB, start, end)
			if err != nil {
				response.ServerError(c)
				return
			}
		}
	}

	filteredRooms := services.FilterRooms(allRooms, filter, booked)
	total := len(filteredRooms)

	// Tìm theo tên chính xác không ra kết quả thì gợi ý tên gần nhất
	var suggestion string
	if filter.Name != "" && total == 0 {
		names := make([]string, 0, len(allRooms))
		for _, room := range allRooms {
			names = append(names, room.Name)
		}
		suggestion = services.SuggestRoomName(filter.Name, names)
	}

	pageRooms := services.PaginateRooms(filteredRooms, filter.Page, filter.Limit)

	roomResponses := make([]dto.RoomResponse, 0, len(pageRooms))
	for i := range pageRooms {
		roomResponses = append(roomResponses, toRoomResponse(&pageRooms[i]))
	}

	c.JSON(200, response.Response{
		Code: 1,
		Mess: "Thành công",
		Data: dto.RoomListResponse{
			Rooms:      roomResponses,
			Message:    dateMessage,
			Suggestion: suggestion,
		},
		Pagination: &response.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	})
}

// GetPopularRooms trả về các phòng nổi bật cho trang chủ
func GetPopularRooms(c *gin.Context) {
	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SortRoomsBy(allRooms, "")

	roomResponses := make([]dto.RoomResponse, 0)
	for i := range allRooms {
		if !allRooms[i].IsPopular {
			continue
		}
		roomResponses = append(roomResponses, toRoomResponse(&allRooms[i]))
	}

	response.Success(c, roomResponses)
}

// GetRoomDetail trả về chi tiết phòng kèm danh sách đánh giá
func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("Author").Where("room_id = ?", roomID).Order("created_at desc").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, dto.ReviewResponse{
			ID:        review.ID,
			RoomID:    review.RoomID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
			Author: dto.UserInfo{
				ID:       review.Author.ID,
				Username: review.Author.Username,
			},
		})
	}

	response.Success(c, dto.RoomDetailResponse{
		Room:    toRoomResponse(&room),
		Reviews: reviewResponses,
	})
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		Name:        request.Name,
		Price:       request.Price,
		Capacity:    request.Capacity,
		Type:        request.Type,
		Description: request.Description,
		IsPopular:   request.IsPopular,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()

	response.Created(c, toRoomResponse(&room))
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Name != nil {
		room.Name = *request.Name
	}
	if request.Price != nil {
		room.Price = *request.Price
	}
	if request.Capacity != nil {
		room.Capacity = *request.Capacity
	}
	if request.Type != nil {
		room.Type = request.Type
	}
	if request.Description != nil {
		room.Description = *request.Description
	}
	if request.IsPopular != nil {
		room.IsPopular = *request.IsPopular
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()

	response.Success(c, toRoomResponse(&room))
}

// DeleteRoom xóa phòng. Booking và review của phòng bị xóa theo.
func DeleteRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	result := config.DB.Delete(&models.Room{}, roomID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateRoomsCache()

	response.Success(c, nil)
}

// UploadRoomPreview tải ảnh đại diện của phòng lên Cloudinary,
// giữ nguyên tên file gốc trong thư mục của phòng
func UploadRoomPreview(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   fmt.Sprintf("rooms/room_%d/preview", room.ID),
		PublicID: file.Filename,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	room.Preview = resp.SecureURL
	if err := config.DB.Model(&room).Update("preview", room.Preview).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()

	response.Success(c, gin.H{"url": resp.SecureURL})
}
