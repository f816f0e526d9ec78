package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService  *service.CourseService
	StorageService *service.StorageService
}

func NewCourseController(courseService *service.CourseService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		StorageService: storageService,
	}
}

// Catalog godoc
// @Summary 课程目录
// @Description 可选过滤：q 匹配标题/副标题，subject/level 精确匹配，free=1 只看免费课
// @Tags 课程
// @Produce  json
// @Param   q query string false "搜索词"
// @Param   subject query string false "学科"
// @Param   level query string false "难度"
// @Param   free query string false "1=只看免费"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *CourseController) Catalog(ctx *gin.Context) {
	filter := repository.CourseFilter{
		Query:    ctx.Query("q"),
		Subject:  ctx.Query("subject"),
		Level:    ctx.Query("level"),
		FreeOnly: ctx.Query("free") == "1",
	}

	courses, err := c.CourseService.Catalog(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// Detail godoc
// @Summary 课程详情
// @Description 课程 + 课时（按 order_index） + 试卷
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	detail, err := c.CourseService.Detail(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title           string  `json:"title" binding:"required"`
	Subtitle        string  `json:"subtitle"`
	Subject         string  `json:"subject"`
	Level           string  `json:"level"`
	Price           float64 `json:"price"`
	IsFree          bool    `json:"is_free"`
	CoverURL        string  `json:"cover_url"`
	PreviewVideoURL string  `json:"preview_video_url"`
	Description     string  `json:"description"`
}

// Create godoc
// @Summary 创建课程
// @Tags 管理端
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CourseRequest true "课程信息"
// @Success 200 {object} util.Response{data=object} "返回新课程ID"
// @Failure 403 {object} util.Response
// @Router /admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Subject:         req.Subject,
		Level:           req.Level,
		Price:           req.Price,
		IsFree:          req.IsFree,
		CoverURL:        req.CoverURL,
		PreviewVideoURL: req.PreviewVideoURL,
		Description:     req.Description,
	}

	if err := c.CourseService.Create(course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"id": course.ID})
}

// Update godoc
// @Summary 更新课程
// @Tags 管理端
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   body body CourseRequest true "课程信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "课程不存在"
// @Router /admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Subject:  req.Subject,
		Level:    req.Level,
		Price:    req.Price,
		IsFree:   req.IsFree,
	}
	course.ID = uint(id)

	if err := c.CourseService.Update(course); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "course updated"})
}

// Delete godoc
// @Summary 删除课程
// @Tags 管理端
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "课程不存在"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Delete(uint(id)); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "course deleted"})
}

// UploadCover godoc
// @Summary 上传课程封面
// @Tags 管理端
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "封面图片"
// @Success 200 {object} util.Response{data=object} "返回访问URL"
// @Router /admin/upload/cover [post]
func (c *CourseController) UploadCover(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("covers/%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
