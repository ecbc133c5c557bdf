package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	hlog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc/credentials/insecure"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/api/router"
	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/storage"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置失败")
	}

	logger.Init(cfg.Logger)
	hlog.SetLogger(hertzadapter.From(logger.Logger))
	logger.Info().Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 追踪初始化要先于所有会创建span的组件
	if cfg.Tracing.Enabled {
		shutdown, err := initTracerProvider(ctx, cfg.Tracing)
		if err != nil {
			logger.Fatal().Err(err).Msg("初始化追踪失败")
		}
		defer func() {
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("关闭追踪导出器失败")
			}
		}()
		logger.Info().Str("endpoint", cfg.Tracing.OTLPEndpoint).Msg("追踪初始化成功")
	}

	storageManager, err := storage.NewStorage(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化存储失败")
	}
	defer storageManager.Close()
	logger.Info().Msg("存储服务初始化成功")

	keywordStore := parser.NewKeywordStore(cfg.Keywords)

	var annotator parser.Annotator
	var skillAnnotator parser.SkillAnnotator
	if cfg.Annotator.ServerURL != "" {
		httpAnnotator := parser.NewHTTPAnnotator(cfg.Annotator.ServerURL,
			parser.WithAnnotatorTimeout(time.Duration(cfg.Annotator.TimeoutSeconds)*time.Second),
			parser.WithSkillServerURL(cfg.Annotator.SkillServerURL),
		)
		annotator = httpAnnotator
		skillAnnotator = httpAnnotator
		logger.Info().Str("server", cfg.Annotator.ServerURL).Msg("标注引擎客户端初始化成功")
	} else {
		logger.Warn().Msg("标注引擎未配置，实体相关提取按降级链路工作")
	}

	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("创建PDF提取器失败")
	}
	logger.Info().Msg("PDF提取器初始化成功")

	extractor := processor.NewResumeExtractor(
		[]processor.ComponentOpt{
			processor.WithAnnotator(annotator),
			processor.WithSkillAnnotator(skillAnnotator),
			processor.WithPDFExtractor(pdfExtractor),
			processor.WithKeywordStore(keywordStore),
		},
		[]processor.SettingOpt{
			processor.WithDebug(cfg.Logger.Level == "debug"),
		},
	)
	logger.Info().Msg("简历提取器初始化成功")

	resumeHandler := handler.NewResumeHandler(storageManager, extractor)

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		tracer,
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))

	router.RegisterRoutes(h, resumeHandler)
	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务器启动中")

	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
	}
	logger.Info().Msg("优雅退出完成")
}

// initTracerProvider 初始化OTLP追踪导出
func initTracerProvider(ctx context.Context, cfg config.TracingConfig) (func(context.Context) error, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(constants.AppName),
			semconv.ServiceVersion(constants.ParserVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}
