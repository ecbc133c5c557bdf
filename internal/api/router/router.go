package router

import (
	"context"
	"errors"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/processor"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	// 单份简历解析：multipart文件，PDF或纯文本
	api.POST("/resume/parse", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件失败"})
			return
		}

		resp, err := resumeHandler.HandleResumeParse(c, fileBytes, fileHeader.Filename)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 批量解析：multipart多文件，只提取不落库
	api.POST("/resume/parse-batch", func(c context.Context, ctx *app.RequestContext) {
		form, err := ctx.MultipartForm()
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "解析multipart表单失败"})
			return
		}
		fileHeaders := form.File["files"]
		if len(fileHeaders) == 0 {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		var items []processor.BatchItem
		for _, fh := range fileHeaders {
			file, err := fh.Open()
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败: " + fh.Filename})
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件失败: " + fh.Filename})
				return
			}
			items = append(items, processor.BatchItem{
				Filename: fh.Filename,
				RawText:  string(data),
			})
		}

		results := resumeHandler.HandleResumeParseBatch(c, items)
		ctx.JSON(consts.StatusOK, utils.H{"results": results})
	})

	// 按提交ID查询落库的解析记录
	api.GET("/resume/:submission_id", func(c context.Context, ctx *app.RequestContext) {
		submissionID := ctx.Param("submission_id")
		submission, err := resumeHandler.HandleGetSubmission(c, submissionID)
		if err != nil {
			if errors.Is(err, handler.ErrSubmissionNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": err.Error()})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, submission)
	})

	// 岗位建议技能查询
	api.GET("/jobs/:job/skills", func(c context.Context, ctx *app.RequestContext) {
		job := ctx.Param("job")
		skills := resumeHandler.HandleJobSkills(job)
		if skills == nil {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位未配置建议技能"})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"job": job, "skills": skills})
	})

	// 健康检查，附带标注引擎可用性
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, resumeHandler.HandleHealth(c))
	})
}
