package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pneuma-faq-bot/config"
	_ "pneuma-faq-bot/docs" // Swagger docs
	"pneuma-faq-bot/internal/catalog"
	chatHTTP "pneuma-faq-bot/internal/chat/delivery/http"
	tgDelivery "pneuma-faq-bot/internal/chat/delivery/telegram"
	wmDelivery "pneuma-faq-bot/internal/chat/delivery/whatsmeow"
	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/deal/store"
	dealUC "pneuma-faq-bot/internal/deal/usecase"
	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/internal/httpserver"
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/internal/policy"
	"pneuma-faq-bot/internal/responder"
	"pneuma-faq-bot/pkg/datemath"
	"pneuma-faq-bot/pkg/llmprovider"
	"pneuma-faq-bot/pkg/log"
	"pneuma-faq-bot/pkg/whatsapp"
)

// @title       Pneuma FAQ Bot API
// @description WhatsApp FAQ bot: keyword intent routing with canned, data-backed and LLM-generated replies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pneuma FAQ bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Deals
	dateParser, err := datemath.NewParser(cfg.Routing.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid routing timezone: ", err)
		return
	}

	var seed []model.Deal
	if cfg.Deals.Seed {
		seed = deal.DefaultSeed()
	}
	dealStore, err := store.Open(ctx, cfg.Deals, seed, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open deals store (%s): %v", cfg.Deals.Source, err)
		return
	}
	defer func() {
		if cerr := dealStore.Close(); cerr != nil {
			logger.Warnf(context.Background(), "Closing deals store: %v", cerr)
		}
	}()
	if dealStore.Backend != config.DealsSourceMemory && len(seed) > 0 {
		if _, serr := store.Seed(ctx, dealStore.Repository, seed); serr != nil {
			logger.Warnf(ctx, "Seeding deals failed: %v", serr)
		}
	}
	readiness := map[string]httpserver.ReadinessCheck{}
	if dealStore.Ping != nil {
		readiness[dealStore.Backend] = dealStore.Ping
	}
	dealsUC := dealUC.New(dealStore.Repository, dateParser, logger)
	logger.Infof(ctx, "Deals source: %s", cfg.Deals.Source)

	// 4. LLM (optional)
	var generator responder.Generator
	if len(cfg.LLM.Providers) > 0 {
		providers, errs := llmprovider.InitializeProviders(&cfg.LLM)
		for _, perr := range errs {
			logger.Warnf(ctx, "LLM provider skipped: %v", perr)
		}
		manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(cfg.LLM), logger)
		if manager.Available() {
			generator = manager
			logger.Infof(ctx, "✅ LLM generator initialized with %d provider(s)", len(providers))
		}
	}
	if generator == nil {
		logger.Warn(ctx, "No LLM provider available, generator handlers will use their fallback text")
	}

	// 5. Catalog, policy, dispatcher
	cat := catalog.FromConfig(cfg.Intents, cfg.Routing.GenerativeIntents)
	router, err := catalog.Build(cat, matcher.Config{Saturation: cfg.Routing.Saturation}, responder.Options{
		Sources:   map[string]responder.Source{catalog.SourceDeals: dealsUC},
		Generator: generator,
		Timeout:   cfg.Generator.Timeout,
		Timezone:  cfg.Routing.Timezone,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build intent catalog: ", err)
		return
	}

	decider, err := policy.New(policy.Config{
		Threshold:     cfg.Routing.Threshold,
		TieMargin:     cfg.Routing.TieMargin,
		NoMatchAction: policy.Action(cfg.Routing.NoMatchAction),
	})
	if err != nil {
		logger.Error(ctx, "Invalid routing policy: ", err)
		return
	}

	opts := dispatcher.Options{
		ApologyText: cfg.Routing.ApologyText,
		Titles:      router.Titles,
		Topics:      router.Topics,
	}
	if generator != nil {
		general := catalog.GeneralHandler(cfg.Generator.GeneralSystemPrompt)
		opts.GeneralHandler = &general
	}
	dispatcherUC := dispatcher.New(router.Matcher, decider, router.Registry, opts, logger)
	logger.Infof(ctx, "Intent catalog loaded: %v", router.Registry.IntentIDs())

	// 6. Optional channels
	if cfg.Whatsmeow.Enabled {
		wm, wmErr := wmDelivery.New(ctx, logger, dispatcherUC, wmDelivery.Config{
			StorePath: cfg.Whatsmeow.StorePath,
			QRPath:    cfg.Whatsmeow.QRPath,
		})
		if wmErr != nil {
			logger.Warnf(ctx, "whatsmeow channel not available: %v", wmErr)
		} else if startErr := wm.Start(ctx); startErr != nil {
			logger.Warnf(ctx, "whatsmeow channel failed to start: %v", startErr)
		} else {
			defer wm.Stop()
			logger.Info(ctx, "✅ whatsmeow channel started")
		}
	}

	if cfg.Telegram.BotToken != "" {
		tg, tgErr := tgDelivery.New(logger, dispatcherUC, tgDelivery.Config{
			BotToken:       cfg.Telegram.BotToken,
			PollingTimeout: cfg.Telegram.PollingTimeout,
		})
		if tgErr != nil {
			logger.Warnf(ctx, "Telegram channel not available: %v", tgErr)
		} else {
			go tg.Run(ctx)
			logger.Info(ctx, "✅ Telegram channel started")
		}
	}

	waClient := whatsapp.NewClient(cfg.WhatsApp.AccessToken, cfg.WhatsApp.PhoneNumberID)
	if cfg.WhatsApp.APIURL != "" {
		waClient.SetAPIURL(cfg.WhatsApp.APIURL)
	}
	if !waClient.Configured() {
		logger.Warn(ctx, "WhatsApp Cloud API not configured: WHATSAPP_ACCESS_TOKEN or phone_number_id missing, Cloud payloads will not be answered")
	}

	if cfg.Webhook.NgrokAPIURL != "" {
		go func() {
			publicURL, ngErr := detectNgrokURL(ctx, cfg.Webhook.NgrokAPIURL)
			if ngErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngErr)
				return
			}
			logger.Infof(ctx, "Public webhook URL: %s/webhook", publicURL)
		}()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Dispatcher:  dispatcherUC,
		Sender:      waClient,
		Chat: chatHTTP.Config{
			VerifyToken: cfg.WhatsApp.VerifyToken,
			Security: chatHTTP.SecurityConfig{
				AppSecret:       cfg.WhatsApp.AppSecret,
				AllowedIPs:      cfg.Webhook.AllowedIPs,
				RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			},
		},
		Deals:     dealsUC,
		Readiness: readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
