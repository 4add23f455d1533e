package main

import (
	"note-board/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	teacher := r.Group("/teacher")
	{
		teacher.POST("/signup", controller.SignUp)
		teacher.POST("/login", controller.SignIn)
		teacher.POST("/logout", controller.SignOut)
		teacher.GET("/me", controller.GetTeacherInfo)

		teacher.POST("/classroom", controller.CreateClassroom)
		teacher.GET("/classrooms", controller.ListClassrooms)
		teacher.DELETE("/classroom/:code", controller.DeleteClassroom)
		// 学生加入入口, 不鉴权
		teacher.GET("/classroom/code/:code", controller.ResolveClassroom)
		teacher.POST("/classroom/code/:code", controller.ResolveClassroom)
	}

	question := r.Group("/question")
	{
		question.POST("", controller.CreateQuestion)
		question.GET("/:classroom_id", controller.ListQuestions)
		question.PATCH("/:id/status", controller.UpdateQuestionStatus)
		question.POST("/:id/answer", controller.AnswerQuestion)
		question.DELETE("/:id", controller.DeleteQuestion)
	}

	sts := r.Group("/sts")
	{
		sts.POST("/apply", controller.ApplySignedUrl)
	}
}
